package handlers

import (
	"net/http"

	"tickethub/internal/middleware"
	"tickethub/internal/models"
	"tickethub/internal/services"

	"github.com/go-chi/chi/v5"
)

// GiftCardHandler handles gift card purchase and balance lookup
type GiftCardHandler struct {
	giftCardService *services.GiftCardService
}

// NewGiftCardHandler creates a new gift card handler
func NewGiftCardHandler(giftCardService *services.GiftCardService) *GiftCardHandler {
	return &GiftCardHandler{giftCardService: giftCardService}
}

// Purchase creates a new gift card for the signed-in user
func (h *GiftCardHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req models.GiftCardPurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.giftCardService.Purchase(&req, user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, card)
}

// Lookup returns a gift card's balance and status by code
func (h *GiftCardHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "gift card code is required")
		return
	}

	card, err := h.giftCardService.Lookup(code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"code":       card.Code,
		"balance":    card.Balance,
		"status":     card.Status,
		"expires_at": card.ExpiresAt,
	})
}
