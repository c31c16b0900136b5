package handlers

import (
	"net/http"

	"tickethub/internal/middleware"
	"tickethub/internal/services"
)

// DashboardHandler serves the organizer dashboard
type DashboardHandler struct {
	eventService services.EventServiceInterface
	orderService *services.OrderService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(eventService services.EventServiceInterface, orderService *services.OrderService) *DashboardHandler {
	return &DashboardHandler{
		eventService: eventService,
		orderService: orderService,
	}
}

// GetDashboard returns the organizer's events and sales aggregates
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	events, err := h.eventService.GetOrganizerEvents(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	stats, err := h.orderService.GetOrganizerStats(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"stats":  stats,
	})
}

// ListOrders returns the signed-in user's order history
func (h *DashboardHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	orders, err := h.orderService.GetUserOrders(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// GetOrder returns one of the signed-in user's orders with its items
func (h *DashboardHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	orderID, err := urlParamInt(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrderForUser(orderID, user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
