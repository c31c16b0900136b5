package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrGiftCardNotFound   = errors.New("gift card not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrListingNotFound    = errors.New("resale listing not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEntry     = errors.New("duplicate entry")

	// ErrCapacityExceeded signals that a requested cart quantity exceeded the
	// ticket type's remaining capacity. The cart is left clamped to the
	// maximum allowed quantity; callers surface the condition to the user.
	ErrCapacityExceeded = errors.New("requested quantity exceeds remaining capacity")

	// ErrPersistenceUnavailable signals that durable cart storage failed.
	// The cart continues in memory for the session.
	ErrPersistenceUnavailable = errors.New("cart persistence unavailable")

	// ErrDeletionBlocked signals an attempt to delete a ticket type that has
	// recorded sales.
	ErrDeletionBlocked = errors.New("cannot delete ticket type with sold tickets")
)
