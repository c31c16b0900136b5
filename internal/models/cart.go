package models

import (
	"errors"
	"time"
)

// CartDocumentVersion is the serialization version written with persisted
// carts. Documents with an unknown version rehydrate as an empty cart.
const CartDocumentVersion = 1

// Cart represents a shopping cart: an ordered collection of line items.
// Aggregates are derived on read, never stored.
type Cart struct {
	Version int            `json:"version"`
	Items   []CartLineItem `json:"items"`
}

// CartLineItem represents a quantity of a single ticket type in the cart.
// Price and event fields are snapshotted at add time to insulate the cart
// from later changes to the source records.
type CartLineItem struct {
	TicketTypeID int       `json:"ticket_type_id"`
	TicketName   string    `json:"ticket_name"`
	Price        int       `json:"price"` // in cents, snapshotted
	Quantity     int       `json:"quantity"`
	EventID      int       `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	EventDate    time.Time `json:"event_date"`
}

// NewCart creates an empty cart at the current document version
func NewCart() *Cart {
	return &Cart{Version: CartDocumentVersion}
}

// ItemCount returns the sum of line item quantities
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the cart total in cents
func (c *Cart) Subtotal() int {
	subtotal := 0
	for _, item := range c.Items {
		subtotal += item.Price * item.Quantity
	}
	return subtotal
}

// IsEmpty returns true if the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem returns the index of the line item for a ticket type, or -1.
// The cart holds at most one line item per distinct ticket type.
func (c *Cart) FindItem(ticketTypeID int) int {
	for i := range c.Items {
		if c.Items[i].TicketTypeID == ticketTypeID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the cart
func (c *Cart) Clone() *Cart {
	clone := &Cart{Version: c.Version}
	if len(c.Items) > 0 {
		clone.Items = make([]CartLineItem, len(c.Items))
		copy(clone.Items, c.Items)
	}
	return clone
}

// Validate validates the cart line item data
func (li *CartLineItem) Validate() error {
	if li.TicketTypeID <= 0 {
		return errors.New("ticket type id is required")
	}

	if li.Quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}

	if err := validateTicketTypePrice(li.Price); err != nil {
		return err
	}

	return nil
}

// Subtotal returns the line total in cents
func (li *CartLineItem) Subtotal() int {
	return li.Price * li.Quantity
}
