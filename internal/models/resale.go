package models

import (
	"errors"
	"time"
)

// ResaleStatus represents the status of a resale listing
type ResaleStatus string

const (
	ResaleActive    ResaleStatus = "active"
	ResaleSold      ResaleStatus = "sold"
	ResaleWithdrawn ResaleStatus = "withdrawn"
)

// ResaleMarkupLimit caps the asking price at a multiple of face value
const ResaleMarkupLimit = 2

// ResaleListing represents a ticket offered for resale by its holder
type ResaleListing struct {
	ID           int          `json:"id" db:"id"`
	SellerID     int          `json:"seller_id" db:"seller_id"`
	EventID      int          `json:"event_id" db:"event_id"`
	TicketTypeID int          `json:"ticket_type_id" db:"ticket_type_id"`
	TicketName   string       `json:"ticket_name" db:"ticket_name"`
	FaceValue    int          `json:"face_value" db:"face_value"`     // in cents
	AskingPrice  int          `json:"asking_price" db:"asking_price"` // in cents
	Status       ResaleStatus `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// Validate validates the resale listing data
func (l *ResaleListing) Validate() error {
	if l.TicketTypeID <= 0 {
		return errors.New("ticket type id is required")
	}

	if l.FaceValue < 0 {
		return errors.New("face value cannot be negative")
	}

	if l.AskingPrice <= 0 {
		return errors.New("asking price must be greater than 0")
	}

	if l.AskingPrice > l.FaceValue*ResaleMarkupLimit {
		return errors.New("asking price cannot exceed twice the face value")
	}

	return validateResaleStatus(l.Status)
}

// validateResaleStatus validates a resale status against the closed set
func validateResaleStatus(status ResaleStatus) error {
	switch status {
	case ResaleActive, ResaleSold, ResaleWithdrawn:
		return nil
	default:
		return errors.New("invalid resale listing status")
	}
}

// IsActive returns true if the listing is available for purchase
func (l *ResaleListing) IsActive() bool {
	return l.Status == ResaleActive
}

// CanBeWithdrawnBy returns true if userID owns the listing and it is still
// active
func (l *ResaleListing) CanBeWithdrawnBy(userID int) bool {
	return l.SellerID == userID && l.Status == ResaleActive
}
