package services

import (
	"fmt"

	"tickethub/internal/models"
)

// TicketRepository interface for ticket type data operations
type TicketRepository interface {
	CreateTicketType(req *models.TicketTypeCreateRequest) (*models.TicketType, error)
	GetTicketTypeByID(id int) (*models.TicketType, error)
	GetTicketTypesByEvent(eventID int) ([]*models.TicketType, error)
	UpdateTicketType(id int, req *models.TicketTypeUpdateRequest) (*models.TicketType, error)
	DeleteTicketType(id int) error
	RemainingCapacity(ticketTypeID int) (int, error)
}

// TicketServiceInterface defines the ticket type operations handlers depend on
type TicketServiceInterface interface {
	GetTicketTypesByEventID(eventID int) ([]*models.TicketType, error)
	GetTicketTypeByID(id int) (*models.TicketType, error)
	CreateTicketType(req *models.TicketTypeCreateRequest, userID int) (*models.TicketType, error)
	UpdateTicketType(id int, req *models.TicketTypeUpdateRequest, userID int) (*models.TicketType, error)
	DeleteTicketType(id, userID int) error
}

// TicketService handles ticket type business logic for the organizer surface
type TicketService struct {
	ticketRepo   TicketRepository
	eventService EventServiceInterface
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo TicketRepository, eventService EventServiceInterface) *TicketService {
	return &TicketService{
		ticketRepo:   ticketRepo,
		eventService: eventService,
	}
}

// GetTicketTypesByEventID returns all ticket types for an event
func (s *TicketService) GetTicketTypesByEventID(eventID int) ([]*models.TicketType, error) {
	return s.ticketRepo.GetTicketTypesByEvent(eventID)
}

// GetTicketTypeByID returns a single ticket type
func (s *TicketService) GetTicketTypeByID(id int) (*models.TicketType, error) {
	return s.ticketRepo.GetTicketTypeByID(id)
}

// CreateTicketType creates a ticket type after checking the user may edit the
// owning event
func (s *TicketService) CreateTicketType(req *models.TicketTypeCreateRequest, userID int) (*models.TicketType, error) {
	canEdit, err := s.eventService.CanUserEditEvent(req.EventID, userID)
	if err != nil {
		return nil, err
	}
	if !canEdit {
		return nil, models.ErrUnauthorized
	}

	return s.ticketRepo.CreateTicketType(req)
}

// UpdateTicketType updates a ticket type after checking ownership. Capacity
// cannot drop below the sold count.
func (s *TicketService) UpdateTicketType(id int, req *models.TicketTypeUpdateRequest, userID int) (*models.TicketType, error) {
	existing, err := s.ticketRepo.GetTicketTypeByID(id)
	if err != nil {
		return nil, err
	}

	canEdit, err := s.eventService.CanUserEditEvent(existing.EventID, userID)
	if err != nil {
		return nil, err
	}
	if !canEdit {
		return nil, models.ErrUnauthorized
	}

	return s.ticketRepo.UpdateTicketType(id, req)
}

// DeleteTicketType deletes a ticket type after checking ownership. A type
// with recorded sales cannot be deleted; the caller receives
// models.ErrDeletionBlocked with an explanation rather than a silent no-op.
func (s *TicketService) DeleteTicketType(id, userID int) error {
	existing, err := s.ticketRepo.GetTicketTypeByID(id)
	if err != nil {
		return err
	}

	canEdit, err := s.eventService.CanUserEditEvent(existing.EventID, userID)
	if err != nil {
		return err
	}
	if !canEdit {
		return models.ErrUnauthorized
	}

	if !existing.CanDelete() {
		return fmt.Errorf("%w: %d ticket(s) already sold", models.ErrDeletionBlocked, existing.QuantitySold)
	}

	return s.ticketRepo.DeleteTicketType(id)
}
