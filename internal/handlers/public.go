package handlers

import (
	"net/http"
	"strconv"

	"tickethub/internal/repositories"
	"tickethub/internal/services"
)

// PublicHandler handles public event browsing
type PublicHandler struct {
	eventService services.EventServiceInterface
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(eventService services.EventServiceInterface) *PublicHandler {
	return &PublicHandler{eventService: eventService}
}

// ListEvents returns published events, filterable by category slug and a
// free-text query. Each event carries its ticket types (with remaining
// capacity) and the hot flag.
func (h *PublicHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters := repositories.EventSearchFilters{
		CategorySlug: r.URL.Query().Get("category"),
		Query:        r.URL.Query().Get("q"),
		UpcomingOnly: r.URL.Query().Get("upcoming") == "true",
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filters.Offset = offset
	}

	events, err := h.eventService.DiscoverEvents(filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

// GetEvent returns a single event with ticket types and availability
func (h *PublicHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := urlParamInt(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := h.eventService.GetEventByID(eventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// ListCategories returns all event categories
func (h *PublicHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.eventService.GetCategories()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
