// Package cart implements the storefront's cart store: the single source of
// truth for a user's pending ticket selections. Commands go in, snapshots come
// out; derived aggregates are recomputed on every read. Quantities are clamped
// against remaining ticket capacity centrally, in the store, not at call
// sites.
package cart

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"tickethub/internal/models"
)

// CapacityResolver answers how many tickets of a type can still be sold at
// mutation time
type CapacityResolver interface {
	RemainingCapacity(ticketTypeID int) (int, error)
}

// Subscriber receives the fresh cart snapshot after every successful mutation
type Subscriber func(snapshot *models.Cart)

// Store owns one cart. Mutations are serialized: each runs to completion,
// persists, and notifies subscribers before the next is admitted.
type Store struct {
	mu          sync.Mutex
	cart        *models.Cart
	persister   Persister
	capacity    CapacityResolver
	subscribers map[int]Subscriber
	nextSubID   int
	logger      *log.Logger
}

// NewStore creates a store rehydrated from the persister. A missing, corrupt,
// or unreadable persisted document yields an empty cart; rehydration never
// fails the caller.
func NewStore(persister Persister, capacity CapacityResolver, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}

	s := &Store{
		cart:        models.NewCart(),
		persister:   persister,
		capacity:    capacity,
		subscribers: make(map[int]Subscriber),
		logger:      logger,
	}

	s.rehydrate()
	return s
}

// rehydrate loads the persisted cart document, falling back to an empty cart
// on any failure
func (s *Store) rehydrate() {
	if s.persister == nil {
		return
	}

	data, err := s.persister.Load()
	if err != nil {
		s.logger.Printf("cart: load failed, starting empty: %v", err)
		return
	}

	if len(data) == 0 {
		return
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Printf("cart: discarding corrupt persisted cart: %v", err)
		return
	}

	if cart.Version != models.CartDocumentVersion {
		s.logger.Printf("cart: discarding persisted cart with unknown version %d", cart.Version)
		return
	}

	s.cart = &cart
}

// AddItem merges quantity tickets of the given type into the cart. Price and
// event fields are snapshotted from the arguments. The resulting line
// quantity is clamped so it never exceeds the type's remaining capacity;
// when the request overflowed, the clamped state is applied and
// models.ErrCapacityExceeded is returned so the caller can surface it.
func (s *Store) AddItem(ticketType *models.TicketType, event models.EventSummary, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return s.Snapshot(), fmt.Errorf("%w: quantity must be positive", models.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := ticketType.Remaining()

	idx := s.cart.FindItem(ticketType.ID)
	current := 0
	if idx >= 0 {
		current = s.cart.Items[idx].Quantity
	}

	desired := current + quantity
	clamped := desired
	if clamped > remaining {
		clamped = remaining
	}

	if clamped <= 0 {
		// Nothing can be added; leave the cart untouched.
		return s.cart.Clone(), models.ErrCapacityExceeded
	}

	if idx >= 0 {
		s.cart.Items[idx].Quantity = clamped
	} else {
		s.cart.Items = append(s.cart.Items, models.CartLineItem{
			TicketTypeID: ticketType.ID,
			TicketName:   ticketType.Name,
			Price:        ticketType.Price,
			Quantity:     clamped,
			EventID:      event.ID,
			EventTitle:   event.Title,
			EventDate:    event.StartDate,
		})
	}

	snapshot := s.commit()
	if clamped < desired {
		return snapshot, models.ErrCapacityExceeded
	}
	return snapshot, nil
}

// UpdateQuantity sets an existing line item's quantity directly. A value of
// zero or less removes the line item. Values above remaining capacity are
// clamped to the maximum allowed. Unknown ticket types are a no-op.
func (s *Store) UpdateQuantity(ticketTypeID, quantity int) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cart.FindItem(ticketTypeID)
	if idx < 0 {
		return s.cart.Clone(), nil
	}

	if quantity <= 0 {
		s.cart.Items = append(s.cart.Items[:idx], s.cart.Items[idx+1:]...)
		return s.commit(), nil
	}

	clamped := quantity
	if s.capacity != nil {
		remaining, err := s.capacity.RemainingCapacity(ticketTypeID)
		if err != nil {
			return s.cart.Clone(), fmt.Errorf("cart: capacity lookup failed: %w", err)
		}
		if clamped > remaining {
			clamped = remaining
		}
	}

	if clamped <= 0 {
		s.cart.Items = append(s.cart.Items[:idx], s.cart.Items[idx+1:]...)
		return s.commit(), models.ErrCapacityExceeded
	}

	s.cart.Items[idx].Quantity = clamped

	snapshot := s.commit()
	if clamped < quantity {
		return snapshot, models.ErrCapacityExceeded
	}
	return snapshot, nil
}

// RemoveItem removes the line item for a ticket type. Removing an absent item
// is a no-op; calling twice has the same effect as calling once.
func (s *Store) RemoveItem(ticketTypeID int) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cart.FindItem(ticketTypeID)
	if idx < 0 {
		return s.cart.Clone()
	}

	s.cart.Items = append(s.cart.Items[:idx], s.cart.Items[idx+1:]...)
	return s.commit()
}

// Clear empties the cart. Used after successful checkout or explicit user
// action.
func (s *Store) Clear() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = models.NewCart()
	return s.commit()
}

// ItemCount returns the sum of line item quantities
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// Subtotal returns the cart total in cents
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// Snapshot returns a deep copy of the current cart. Later mutations do not
// alter a snapshot.
func (s *Store) Snapshot() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Subscribe registers a subscriber notified with the fresh snapshot after
// every successful mutation. The returned function cancels the subscription.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// commit persists the cart and notifies subscribers. Persistence failures are
// logged and the session continues in memory; they never fail the mutation.
// Callers must hold s.mu.
func (s *Store) commit() *models.Cart {
	snapshot := s.cart.Clone()

	if s.persister != nil {
		data, err := json.Marshal(s.cart)
		if err != nil {
			s.logger.Printf("cart: marshal failed: %v", err)
		} else if err := s.persister.Save(data); err != nil {
			s.logger.Printf("cart: %v: %v", models.ErrPersistenceUnavailable, err)
		}
	}

	for _, fn := range s.subscribers {
		fn(snapshot.Clone())
	}

	return snapshot
}
