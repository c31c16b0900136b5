package handlers

import (
	"net/http"

	"tickethub/internal/middleware"
	"tickethub/internal/models"
	"tickethub/internal/services"
)

// TicketTypeHandler handles ticket type management for organizers
type TicketTypeHandler struct {
	ticketService services.TicketServiceInterface
	eventService  services.EventServiceInterface
}

// NewTicketTypeHandler creates a new ticket type handler
func NewTicketTypeHandler(ticketService services.TicketServiceInterface, eventService services.EventServiceInterface) *TicketTypeHandler {
	return &TicketTypeHandler{
		ticketService: ticketService,
		eventService:  eventService,
	}
}

// ListTicketTypes returns the ticket types for one of the organizer's events
func (h *TicketTypeHandler) ListTicketTypes(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	eventID, err := urlParamInt(r, "eventID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	canEdit, err := h.eventService.CanUserEditEvent(eventID, user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !canEdit {
		respondError(w, http.StatusForbidden, "you cannot manage this event")
		return
	}

	ticketTypes, err := h.ticketService.GetTicketTypesByEventID(eventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"ticket_types": ticketTypes})
}

// CreateTicketType creates a ticket type for one of the organizer's events
func (h *TicketTypeHandler) CreateTicketType(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	eventID, err := urlParamInt(r, "eventID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req models.TicketTypeCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.EventID = eventID

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticketType, err := h.ticketService.CreateTicketType(&req, user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, ticketType)
}

// UpdateTicketType updates a ticket type. Capacity cannot drop below the
// number already sold.
func (h *TicketTypeHandler) UpdateTicketType(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	ticketTypeID, err := urlParamInt(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid ticket type id")
		return
	}

	var req models.TicketTypeUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticketType, err := h.ticketService.UpdateTicketType(ticketTypeID, &req, user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ticketType)
}

// DeleteTicketType deletes a ticket type. Deletion is refused with 409 and an
// explanation once any tickets have been sold.
func (h *TicketTypeHandler) DeleteTicketType(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	ticketTypeID, err := urlParamInt(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid ticket type id")
		return
	}

	if err := h.ticketService.DeleteTicketType(ticketTypeID, user.ID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
