package handlers

import (
	"errors"
	"net/http"

	"tickethub/internal/cart"
	"tickethub/internal/middleware"
	"tickethub/internal/models"
	"tickethub/internal/services"

	"github.com/gorilla/sessions"
)

// CartHandler handles shopping cart and checkout requests. Each request
// rehydrates the cart store from the session, applies one mutation, and the
// store persists back before responding.
type CartHandler struct {
	ticketService services.TicketServiceInterface
	eventService  services.EventServiceInterface
	orderService  *services.OrderService
	capacity      cart.CapacityResolver
	store         sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	ticketService services.TicketServiceInterface,
	eventService services.EventServiceInterface,
	orderService *services.OrderService,
	capacity cart.CapacityResolver,
	store sessions.Store,
) *CartHandler {
	return &CartHandler{
		ticketService: ticketService,
		eventService:  eventService,
		orderService:  orderService,
		capacity:      capacity,
		store:         store,
	}
}

// cartResponse is the snapshot plus derived aggregates every cart endpoint
// returns
type cartResponse struct {
	Cart      *models.Cart `json:"cart"`
	ItemCount int          `json:"item_count"`
	Subtotal  int          `json:"subtotal"`
	Warning   string       `json:"warning,omitempty"`
}

func newCartResponse(snapshot *models.Cart, warning string) cartResponse {
	return cartResponse{
		Cart:      snapshot,
		ItemCount: snapshot.ItemCount(),
		Subtotal:  snapshot.Subtotal(),
		Warning:   warning,
	}
}

// cartStore builds the session-backed cart store for this request. Session
// failures degrade to an in-memory cart rather than failing the request.
func (h *CartHandler) cartStore(w http.ResponseWriter, r *http.Request) *cart.Store {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil || session == nil {
		return cart.NewStore(cart.NewMemoryPersister(), h.capacity, nil)
	}

	return cart.NewStore(cart.NewSessionPersister(session, w, r), h.capacity, nil)
}

// ViewCart returns the current cart with derived aggregates
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	store := h.cartStore(w, r)
	respondJSON(w, http.StatusOK, newCartResponse(store.Snapshot(), ""))
}

// AddItem adds tickets to the cart. Re-adding a ticket type increments its
// line; the store clamps quantities to remaining capacity and the clamp is
// surfaced as a warning.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticketType, err := h.ticketService.GetTicketTypeByID(req.TicketTypeID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if ticketType.EventID != req.EventID {
		respondError(w, http.StatusBadRequest, "ticket type does not belong to event")
		return
	}

	event, err := h.eventService.GetEventByID(req.EventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	store := h.cartStore(w, r)
	snapshot, err := store.AddItem(ticketType, event.Summary(), req.Quantity)

	warning := ""
	if err != nil {
		if !errors.Is(err, models.ErrCapacityExceeded) {
			respondServiceError(w, err)
			return
		}
		warning = err.Error()
	}

	respondJSON(w, http.StatusOK, newCartResponse(snapshot, warning))
}

// UpdateItem sets a line item's quantity. Zero removes the line; values above
// remaining capacity are clamped.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ticketTypeID, err := urlParamInt(r, "ticketTypeID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid ticket type id")
		return
	}

	var req models.UpdateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store := h.cartStore(w, r)
	snapshot, err := store.UpdateQuantity(ticketTypeID, req.Quantity)

	warning := ""
	if err != nil {
		if !errors.Is(err, models.ErrCapacityExceeded) {
			respondServiceError(w, err)
			return
		}
		warning = err.Error()
	}

	respondJSON(w, http.StatusOK, newCartResponse(snapshot, warning))
}

// RemoveItem removes a line item. Removing an absent item is a no-op.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ticketTypeID, err := urlParamInt(r, "ticketTypeID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid ticket type id")
		return
	}

	store := h.cartStore(w, r)
	respondJSON(w, http.StatusOK, newCartResponse(store.RemoveItem(ticketTypeID), ""))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.cartStore(w, r)
	respondJSON(w, http.StatusOK, newCartResponse(store.Clear(), ""))
}

// Checkout converts the cart into an order. The cart is cleared only after
// the order commits.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	store := h.cartStore(w, r)
	snapshot := store.Snapshot()

	order, err := h.orderService.Checkout(user, snapshot, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	store.Clear()

	respondJSON(w, http.StatusCreated, order)
}
