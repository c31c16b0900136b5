package models

import (
	"errors"
	"strings"
	"time"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

// Event represents an event in the system
type Event struct {
	ID          int         `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	StartDate   time.Time   `json:"start_date" db:"start_date"`
	EndDate     time.Time   `json:"end_date" db:"end_date"`
	Location    string      `json:"location" db:"location"`
	CategoryID  int         `json:"category_id" db:"category_id"`
	OrganizerID int         `json:"organizer_id" db:"organizer_id"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`

	// Related data
	Category    *Category     `json:"category,omitempty"`
	TicketTypes []*TicketType `json:"ticket_types,omitempty"`
	Hot         bool          `json:"hot"`
}

// EventSummary is the denormalized event data snapshotted into cart line
// items at add time
type EventSummary struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
}

// Summary returns the denormalized fields the cart snapshots
func (e *Event) Summary() EventSummary {
	return EventSummary{
		ID:        e.ID,
		Title:     e.Title,
		StartDate: e.StartDate,
	}
}

// Validate validates the event data
func (e *Event) Validate() error {
	if err := validateEventTitle(e.Title); err != nil {
		return err
	}

	if err := validateEventDates(e.StartDate, e.EndDate); err != nil {
		return err
	}

	if err := validateEventLocation(e.Location); err != nil {
		return err
	}

	if err := validateEventStatus(e.Status); err != nil {
		return err
	}

	return validateEventDescription(e.Description)
}

// validateEventTitle validates an event title
func validateEventTitle(title string) error {
	if title == "" {
		return errors.New("title is required")
	}

	if len(title) > 255 {
		return errors.New("title must be less than 255 characters")
	}

	if strings.TrimSpace(title) == "" {
		return errors.New("title cannot be only whitespace")
	}

	return nil
}

// validateEventDates validates event start and end dates
func validateEventDates(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return errors.New("start date is required")
	}

	if endDate.IsZero() {
		return errors.New("end date is required")
	}

	if startDate.After(endDate) {
		return errors.New("start date must be before end date")
	}

	return nil
}

// validateEventLocation validates an event location
func validateEventLocation(location string) error {
	if location == "" {
		return errors.New("location is required")
	}

	if len(location) > 255 {
		return errors.New("location must be less than 255 characters")
	}

	return nil
}

// validateEventStatus validates an event status against the closed set
func validateEventStatus(status EventStatus) error {
	switch status {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return nil
	default:
		return errors.New("invalid event status")
	}
}

// validateEventDescription validates an event description
func validateEventDescription(description string) error {
	if len(description) > 5000 {
		return errors.New("description must be less than 5000 characters")
	}

	return nil
}

// IsPublished returns true if the event is visible to the public
func (e *Event) IsPublished() bool {
	return e.Status == StatusPublished
}

// IsUpcoming returns true if the event has not started yet
func (e *Event) IsUpcoming() bool {
	return time.Now().Before(e.StartDate)
}

// HasEnded returns true if the event end date has passed
func (e *Event) HasEnded() bool {
	return time.Now().After(e.EndDate)
}

// CanBeEdited returns true if the event can still be modified by its organizer
func (e *Event) CanBeEdited() bool {
	return e.Status == StatusDraft || e.Status == StatusPublished
}
