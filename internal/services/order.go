package services

import (
	"fmt"
	"strings"
	"time"

	"tickethub/internal/models"
	"tickethub/internal/repositories"

	"github.com/google/uuid"
)

// OrderRepository interface for order data operations
type OrderRepository interface {
	CreateFromCart(order *models.Order, cart *models.Cart) (*models.Order, error)
	GetByID(id int) (*models.Order, error)
	GetByUser(userID int) ([]*models.Order, error)
	GetOrganizerStats(organizerID int) (*repositories.OrganizerStats, error)
}

// GiftCardRedeemer applies gift card balance to a checkout total. Refund
// credits a redemption back when the checkout it paid for does not complete.
type GiftCardRedeemer interface {
	Redeem(code string, amount int) (int, error)
	Refund(code string, amount int) error
}

// OrderService handles checkout and order history
type OrderService struct {
	orderRepo OrderRepository
	giftCards GiftCardRedeemer
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository, giftCards GiftCardRedeemer) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		giftCards: giftCards,
	}
}

// Checkout converts a cart snapshot into a completed order. The total is
// recomputed from the snapshot's line items, an optional gift card is applied,
// and inventory is decremented transactionally. The caller clears the cart
// only after a nil error.
func (s *OrderService) Checkout(user *models.User, snapshot *models.Cart, req *models.CheckoutRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	if snapshot.IsEmpty() {
		return nil, fmt.Errorf("%w: cart is empty", models.ErrInvalidInput)
	}

	total := snapshot.Subtotal()

	giftCardCode := strings.TrimSpace(req.GiftCardCode)
	applied := 0
	if giftCardCode != "" {
		var err error
		applied, err = s.giftCards.Redeem(giftCardCode, total)
		if err != nil {
			return nil, fmt.Errorf("gift card redemption failed: %w", err)
		}
		total -= applied
	}

	order := &models.Order{
		UserID:       user.ID,
		OrderNumber:  generateOrderNumber(),
		TotalAmount:  total,
		GiftCardCode: giftCardCode,
		Status:       models.OrderCompleted,
		BillingEmail: req.BillingEmail,
		BillingName:  req.BillingName,
	}

	created, err := s.orderRepo.CreateFromCart(order, snapshot)
	if err != nil {
		// The redemption committed separately, so credit it back before
		// surfacing the failure.
		if applied > 0 {
			if refundErr := s.giftCards.Refund(giftCardCode, applied); refundErr != nil {
				return nil, fmt.Errorf("gift card refund failed (%v) after order failure: %w", refundErr, err)
			}
		}
		return nil, err
	}

	return created, nil
}

// GetOrderForUser returns an order if it belongs to the user
func (s *OrderService) GetOrderForUser(orderID, userID int) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, models.ErrUnauthorized
	}

	return order, nil
}

// GetUserOrders returns a user's order history, newest first
func (s *OrderService) GetUserOrders(userID int) ([]*models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrganizerStats returns dashboard aggregates for an organizer
func (s *OrderService) GetOrganizerStats(organizerID int) (*repositories.OrganizerStats, error) {
	return s.orderRepo.GetOrganizerStats(organizerID)
}

// generateOrderNumber produces an order number like ORD-20260115-a3f29c
func generateOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
