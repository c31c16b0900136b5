package services

import (
	"fmt"

	"tickethub/internal/models"
	"tickethub/internal/repositories"
)

// EventRepository interface for event data operations
type EventRepository interface {
	Create(event *models.Event) (*models.Event, error)
	GetByID(id int) (*models.Event, error)
	Search(filters repositories.EventSearchFilters) ([]*models.Event, error)
	GetByOrganizer(organizerID int) ([]*models.Event, error)
	GetCategories() ([]*models.Category, error)
}

// EventServiceInterface defines the event operations handlers depend on
type EventServiceInterface interface {
	DiscoverEvents(filters repositories.EventSearchFilters) ([]*models.Event, error)
	GetEventByID(id int) (*models.Event, error)
	GetCategories() ([]*models.Category, error)
	GetOrganizerEvents(organizerID int) ([]*models.Event, error)
	CanUserEditEvent(eventID, userID int) (bool, error)
}

// EventService handles event discovery and organizer event access
type EventService struct {
	eventRepo  EventRepository
	ticketRepo TicketRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository, ticketRepo TicketRepository) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
	}
}

// DiscoverEvents returns published events matching the filters with ticket
// types attached and the hot flag computed for display ranking
func (s *EventService) DiscoverEvents(filters repositories.EventSearchFilters) ([]*models.Event, error) {
	events, err := s.eventRepo.Search(filters)
	if err != nil {
		return nil, fmt.Errorf("event discovery failed: %w", err)
	}

	for _, event := range events {
		ticketTypes, err := s.ticketRepo.GetTicketTypesByEvent(event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load ticket types for event %d: %w", event.ID, err)
		}
		event.TicketTypes = ticketTypes
		event.Hot = models.IsHotEvent(ticketTypes)
	}

	return events, nil
}

// GetEventByID returns an event with its ticket types and hot flag
func (s *EventService) GetEventByID(id int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	ticketTypes, err := s.ticketRepo.GetTicketTypesByEvent(event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket types: %w", err)
	}

	event.TicketTypes = ticketTypes
	event.Hot = models.IsHotEvent(ticketTypes)

	return event, nil
}

// GetCategories returns all event categories
func (s *EventService) GetCategories() ([]*models.Category, error) {
	return s.eventRepo.GetCategories()
}

// GetOrganizerEvents returns all events owned by an organizer
func (s *EventService) GetOrganizerEvents(organizerID int) ([]*models.Event, error) {
	return s.eventRepo.GetByOrganizer(organizerID)
}

// CanUserEditEvent returns true if the user owns the event and it is still
// editable
func (s *EventService) CanUserEditEvent(eventID, userID int) (bool, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return false, err
	}

	return event.OrganizerID == userID && event.CanBeEdited(), nil
}
