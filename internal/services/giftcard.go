package services

import (
	"strings"
	"time"

	"tickethub/internal/models"

	"github.com/google/uuid"
)

// GiftCardRepository interface for gift card data operations
type GiftCardRepository interface {
	Create(card *models.GiftCard) (*models.GiftCard, error)
	GetByCode(code string) (*models.GiftCard, error)
	Redeem(code string, amount int) (int, error)
	Refund(code string, amount int) error
}

// GiftCardValidity is how long a purchased gift card stays redeemable
const GiftCardValidity = 365 * 24 * time.Hour

// GiftCardService handles gift card purchase and balance lookup
type GiftCardService struct {
	giftCardRepo GiftCardRepository
}

// NewGiftCardService creates a new gift card service
func NewGiftCardService(giftCardRepo GiftCardRepository) *GiftCardService {
	return &GiftCardService{giftCardRepo: giftCardRepo}
}

// Purchase creates a new gift card with a generated code
func (s *GiftCardService) Purchase(req *models.GiftCardPurchaseRequest, purchaserID int) (*models.GiftCard, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	card := &models.GiftCard{
		Code:           generateGiftCardCode(),
		InitialBalance: req.Amount,
		Balance:        req.Amount,
		PurchaserID:    purchaserID,
		RecipientEmail: req.RecipientEmail,
		Status:         models.GiftCardActive,
		ExpiresAt:      time.Now().Add(GiftCardValidity),
	}

	return s.giftCardRepo.Create(card)
}

// Lookup returns a gift card by code
func (s *GiftCardService) Lookup(code string) (*models.GiftCard, error) {
	return s.giftCardRepo.GetByCode(strings.TrimSpace(code))
}

// Redeem applies up to amount from the card and returns the amount applied
func (s *GiftCardService) Redeem(code string, amount int) (int, error) {
	return s.giftCardRepo.Redeem(code, amount)
}

// Refund credits a redeemed amount back onto the card
func (s *GiftCardService) Refund(code string, amount int) error {
	return s.giftCardRepo.Refund(code, amount)
}

// generateGiftCardCode produces a code like GIFT-7F3A9C21D4E8
func generateGiftCardCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "GIFT-" + raw[:12]
}
