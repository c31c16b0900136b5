package models

import (
	"errors"
	"strings"
	"time"
)

// HotEventThreshold is the aggregate sold/total ratio at or above which an
// event is ranked as "hot" in discovery listings. Display only; never blocks
// purchases.
const HotEventThreshold = 0.80

// TicketType represents a priced category of admission for an event
type TicketType struct {
	ID            int       `json:"id" db:"id"`
	EventID       int       `json:"event_id" db:"event_id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Price         int       `json:"price" db:"price"` // Price in cents
	QuantityTotal int       `json:"quantity_total" db:"quantity_total"`
	QuantitySold  int       `json:"quantity_sold" db:"quantity_sold"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Validate validates the ticket type data
func (tt *TicketType) Validate() error {
	if err := validateTicketTypeName(tt.Name); err != nil {
		return err
	}

	if err := validateTicketTypePrice(tt.Price); err != nil {
		return err
	}

	if err := validateTicketTypeQuantity(tt.QuantityTotal); err != nil {
		return err
	}

	if err := tt.validateSoldCount(); err != nil {
		return err
	}

	return validateTicketTypeDescription(tt.Description)
}

// validateSoldCount validates the sold count against total capacity
func (tt *TicketType) validateSoldCount() error {
	if tt.QuantitySold < 0 {
		return errors.New("sold count cannot be negative")
	}

	if tt.QuantitySold > tt.QuantityTotal {
		return errors.New("sold count cannot exceed total capacity")
	}

	return nil
}

// validateTicketTypeName validates a ticket type name
func validateTicketTypeName(name string) error {
	if name == "" {
		return errors.New("ticket type name is required")
	}

	if len(name) > 100 {
		return errors.New("ticket type name must be less than 100 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("ticket type name cannot be only whitespace")
	}

	return nil
}

// validateTicketTypePrice validates a ticket type price
func validateTicketTypePrice(price int) error {
	if price < 0 {
		return errors.New("ticket price cannot be negative")
	}

	// Maximum price of $10,000 (1,000,000 cents)
	if price > 1000000 {
		return errors.New("ticket price cannot exceed $10,000")
	}

	return nil
}

// validateTicketTypeQuantity validates a ticket type capacity
func validateTicketTypeQuantity(quantity int) error {
	if quantity < 0 {
		return errors.New("ticket quantity cannot be negative")
	}

	// Maximum quantity of 100,000 tickets per type
	if quantity > 100000 {
		return errors.New("ticket quantity cannot exceed 100,000")
	}

	return nil
}

// validateTicketTypeDescription validates a ticket type description
func validateTicketTypeDescription(description string) error {
	if len(description) > 1000 {
		return errors.New("ticket type description must be less than 1000 characters")
	}

	return nil
}

// Remaining returns the number of tickets still available for purchase.
// Total for all valid inputs, including zero-capacity types.
func (tt *TicketType) Remaining() int {
	remaining := tt.QuantityTotal - tt.QuantitySold
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsSoldOut returns true if no tickets remain
func (tt *TicketType) IsSoldOut() bool {
	return tt.Remaining() == 0
}

// CanDelete returns true if the ticket type may be deleted. A type with
// recorded sales is immutable with respect to deletion.
func (tt *TicketType) CanDelete() bool {
	return tt.QuantitySold == 0
}

// CanUpdateQuantity returns true if total capacity can be changed to
// newQuantity without dropping below the sold count
func (tt *TicketType) CanUpdateQuantity(newQuantity int) bool {
	return newQuantity >= tt.QuantitySold
}

// PriceInCurrency returns the price in the main currency unit as a float
func (tt *TicketType) PriceInCurrency() float64 {
	return float64(tt.Price) / 100.0
}

// IsHotEvent reports whether an event's aggregate sold/total ratio across its
// ticket types meets the hot threshold. Returns false when aggregate capacity
// is zero.
func IsHotEvent(ticketTypes []*TicketType) bool {
	total := 0
	sold := 0
	for _, tt := range ticketTypes {
		total += tt.QuantityTotal
		sold += tt.QuantitySold
	}

	if total == 0 {
		return false
	}

	return float64(sold)/float64(total) >= HotEventThreshold
}
