package models

import (
	"errors"
	"time"
)

// GiftCardStatus represents the status of a gift card
type GiftCardStatus string

const (
	GiftCardActive   GiftCardStatus = "active"
	GiftCardRedeemed GiftCardStatus = "redeemed"
	GiftCardExpired  GiftCardStatus = "expired"
)

// GiftCard represents a stored-value gift card purchasable in the storefront
// and redeemable against checkout totals
type GiftCard struct {
	ID             int            `json:"id" db:"id"`
	Code           string         `json:"code" db:"code"`
	InitialBalance int            `json:"initial_balance" db:"initial_balance"` // in cents
	Balance        int            `json:"balance" db:"balance"`                 // in cents
	PurchaserID    int            `json:"purchaser_id" db:"purchaser_id"`
	RecipientEmail string         `json:"recipient_email" db:"recipient_email"`
	Status         GiftCardStatus `json:"status" db:"status"`
	ExpiresAt      time.Time      `json:"expires_at" db:"expires_at"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}

// Validate validates the gift card data
func (g *GiftCard) Validate() error {
	if g.Code == "" {
		return errors.New("gift card code is required")
	}

	if g.InitialBalance <= 0 {
		return errors.New("gift card balance must be greater than 0")
	}

	if g.Balance < 0 {
		return errors.New("gift card balance cannot be negative")
	}

	if g.Balance > g.InitialBalance {
		return errors.New("gift card balance cannot exceed initial balance")
	}

	return validateGiftCardStatus(g.Status)
}

// validateGiftCardStatus validates a gift card status against the closed set
func validateGiftCardStatus(status GiftCardStatus) error {
	switch status {
	case GiftCardActive, GiftCardRedeemed, GiftCardExpired:
		return nil
	default:
		return errors.New("invalid gift card status")
	}
}

// IsRedeemable returns true if the card can be applied to a checkout
func (g *GiftCard) IsRedeemable() bool {
	return g.Status == GiftCardActive && g.Balance > 0 && time.Now().Before(g.ExpiresAt)
}

// Redeem deducts up to amount from the balance and returns the amount
// actually applied. Never drives the balance below zero.
func (g *GiftCard) Redeem(amount int) int {
	if amount <= 0 || !g.IsRedeemable() {
		return 0
	}

	applied := amount
	if applied > g.Balance {
		applied = g.Balance
	}

	g.Balance -= applied
	if g.Balance == 0 {
		g.Status = GiftCardRedeemed
	}

	return applied
}
