package services

import (
	"fmt"

	"tickethub/internal/models"
)

// ResaleRepository interface for resale listing data operations
type ResaleRepository interface {
	Create(listing *models.ResaleListing) (*models.ResaleListing, error)
	GetByID(id int) (*models.ResaleListing, error)
	GetActiveByEvent(eventID int) ([]*models.ResaleListing, error)
	UpdateStatus(id int, status models.ResaleStatus) error
}

// ResaleService handles resale listing business logic
type ResaleService struct {
	resaleRepo ResaleRepository
	ticketRepo TicketRepository
}

// NewResaleService creates a new resale service
func NewResaleService(resaleRepo ResaleRepository, ticketRepo TicketRepository) *ResaleService {
	return &ResaleService{
		resaleRepo: resaleRepo,
		ticketRepo: ticketRepo,
	}
}

// CreateListing lists a ticket for resale. Face value and display fields are
// snapshotted from the ticket type; the asking price is capped at twice face
// value by model validation.
func (s *ResaleService) CreateListing(req *models.ResaleListingCreateRequest, sellerID int) (*models.ResaleListing, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	ticketType, err := s.ticketRepo.GetTicketTypeByID(req.TicketTypeID)
	if err != nil {
		return nil, err
	}

	listing := &models.ResaleListing{
		SellerID:     sellerID,
		EventID:      ticketType.EventID,
		TicketTypeID: ticketType.ID,
		TicketName:   ticketType.Name,
		FaceValue:    ticketType.Price,
		AskingPrice:  req.AskingPrice,
		Status:       models.ResaleActive,
	}

	if err := listing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	return s.resaleRepo.Create(listing)
}

// GetEventListings returns active listings for an event, cheapest first
func (s *ResaleService) GetEventListings(eventID int) ([]*models.ResaleListing, error) {
	return s.resaleRepo.GetActiveByEvent(eventID)
}

// WithdrawListing withdraws a listing if the caller owns it and it is still
// active
func (s *ResaleService) WithdrawListing(listingID, userID int) error {
	listing, err := s.resaleRepo.GetByID(listingID)
	if err != nil {
		return err
	}

	if !listing.CanBeWithdrawnBy(userID) {
		return models.ErrUnauthorized
	}

	return s.resaleRepo.UpdateStatus(listingID, models.ResaleWithdrawn)
}
