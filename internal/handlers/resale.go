package handlers

import (
	"net/http"

	"tickethub/internal/middleware"
	"tickethub/internal/models"
	"tickethub/internal/services"
)

// ResaleHandler handles resale listing operations
type ResaleHandler struct {
	resaleService *services.ResaleService
}

// NewResaleHandler creates a new resale handler
func NewResaleHandler(resaleService *services.ResaleService) *ResaleHandler {
	return &ResaleHandler{resaleService: resaleService}
}

// ListByEvent returns active resale listings for an event
func (h *ResaleHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := urlParamInt(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event ID")
		return
	}

	listings, err := h.resaleService.GetEventListings(eventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
	})
}

// Create lists a ticket for resale on behalf of the signed-in user
func (h *ResaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req models.ResaleListingCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.resaleService.CreateListing(&req, user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, listing)
}

// Withdraw removes the signed-in user's listing from sale
func (h *ResaleHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	listingID, err := urlParamInt(r, "listingID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid listing ID")
		return
	}

	if err := h.resaleService.WithdrawListing(listingID, user.ID); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
