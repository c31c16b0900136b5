package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tickethub/internal/models"
)

// GiftCardRepository handles gift card data operations
type GiftCardRepository struct {
	db *sql.DB
}

// NewGiftCardRepository creates a new gift card repository
func NewGiftCardRepository(db *sql.DB) *GiftCardRepository {
	return &GiftCardRepository{db: db}
}

// Create inserts a new gift card
func (r *GiftCardRepository) Create(card *models.GiftCard) (*models.GiftCard, error) {
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO gift_cards (code, initial_balance, balance, purchaser_id, recipient_email, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		query,
		card.Code,
		card.InitialBalance,
		card.Balance,
		card.PurchaserID,
		card.RecipientEmail,
		card.Status,
		card.ExpiresAt,
	).Scan(&card.ID, &card.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create gift card: %w", err)
	}

	return card, nil
}

// GetByCode retrieves a gift card by its code
func (r *GiftCardRepository) GetByCode(code string) (*models.GiftCard, error) {
	query := `
		SELECT id, code, initial_balance, balance, purchaser_id, recipient_email, status, expires_at, created_at
		FROM gift_cards
		WHERE code = $1`

	card := &models.GiftCard{}
	err := r.db.QueryRow(query, code).Scan(
		&card.ID,
		&card.Code,
		&card.InitialBalance,
		&card.Balance,
		&card.PurchaserID,
		&card.RecipientEmail,
		&card.Status,
		&card.ExpiresAt,
		&card.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrGiftCardNotFound
		}
		return nil, fmt.Errorf("failed to get gift card: %w", err)
	}

	return card, nil
}

// Redeem atomically deducts up to amount from a card's balance and returns
// the amount actually applied. The row is locked so concurrent redemptions
// never overdraw the card.
func (r *GiftCardRepository) Redeem(code string, amount int) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	card := &models.GiftCard{}
	err = tx.QueryRow(`
		SELECT id, code, initial_balance, balance, purchaser_id, recipient_email, status, expires_at, created_at
		FROM gift_cards
		WHERE code = $1
		FOR UPDATE`, code).Scan(
		&card.ID,
		&card.Code,
		&card.InitialBalance,
		&card.Balance,
		&card.PurchaserID,
		&card.RecipientEmail,
		&card.Status,
		&card.ExpiresAt,
		&card.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrGiftCardNotFound
		}
		return 0, fmt.Errorf("failed to lock gift card: %w", err)
	}

	applied := card.Redeem(amount)
	if applied == 0 {
		return 0, nil
	}

	_, err = tx.Exec(
		`UPDATE gift_cards SET balance = $2, status = $3 WHERE id = $1`,
		card.ID, card.Balance, card.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update gift card balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit redemption: %w", err)
	}

	return applied, nil
}

// Refund credits amount back onto a card after a failed checkout. A card
// drained by the redemption becomes active again unless it has expired.
func (r *GiftCardRepository) Refund(code string, amount int) error {
	if amount <= 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var balance int
	var status models.GiftCardStatus
	var expiresAt time.Time
	err = tx.QueryRow(`
		SELECT balance, status, expires_at
		FROM gift_cards
		WHERE code = $1
		FOR UPDATE`, code).Scan(&balance, &status, &expiresAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.ErrGiftCardNotFound
		}
		return fmt.Errorf("failed to lock gift card: %w", err)
	}

	balance += amount
	if status == models.GiftCardRedeemed && time.Now().Before(expiresAt) {
		status = models.GiftCardActive
	}

	_, err = tx.Exec(
		`UPDATE gift_cards SET balance = $2, status = $3 WHERE code = $1`,
		code, balance, status,
	)
	if err != nil {
		return fmt.Errorf("failed to restore gift card balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit refund: %w", err)
	}

	return nil
}
