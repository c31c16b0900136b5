package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"tickethub/internal/models"
)

func seedGiftCard(t *testing.T, db *sql.DB, purchaserID, balance int) *models.GiftCard {
	t.Helper()

	repo := NewGiftCardRepository(db)
	card, err := repo.Create(&models.GiftCard{
		Code:           fmt.Sprintf("GIFT-%012X", time.Now().UnixNano()&0xFFFFFFFFFFFF),
		InitialBalance: balance,
		Balance:        balance,
		PurchaserID:    purchaserID,
		RecipientEmail: "recipient@example.com",
		Status:         models.GiftCardActive,
		ExpiresAt:      time.Now().Add(365 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Failed to seed gift card: %v", err)
	}

	t.Cleanup(func() {
		db.Exec(`DELETE FROM gift_cards WHERE id = $1`, card.ID)
	})

	return card
}

func TestGiftCardRepository_CreateAndGetByCode(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	_, purchaserID := seedEventFixture(t, db)

	card := seedGiftCard(t, db, purchaserID, 5000)

	repo := NewGiftCardRepository(db)
	fetched, err := repo.GetByCode(card.Code)
	if err != nil {
		t.Fatalf("GetByCode() error = %v", err)
	}
	if fetched.Balance != 5000 || fetched.Status != models.GiftCardActive {
		t.Errorf("fetched card = %+v", fetched)
	}

	if _, err := repo.GetByCode("GIFT-DOESNOTEXIST"); !errors.Is(err, models.ErrGiftCardNotFound) {
		t.Errorf("GetByCode() on unknown code error = %v, want ErrGiftCardNotFound", err)
	}
}

func TestGiftCardRepository_Redeem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	_, purchaserID := seedEventFixture(t, db)

	repo := NewGiftCardRepository(db)

	t.Run("partial redemption leaves card active", func(t *testing.T) {
		card := seedGiftCard(t, db, purchaserID, 5000)

		applied, err := repo.Redeem(card.Code, 2000)
		if err != nil {
			t.Fatalf("Redeem() error = %v", err)
		}
		if applied != 2000 {
			t.Errorf("applied = %d, want 2000", applied)
		}

		fetched, err := repo.GetByCode(card.Code)
		if err != nil {
			t.Fatalf("GetByCode() error = %v", err)
		}
		if fetched.Balance != 3000 || fetched.Status != models.GiftCardActive {
			t.Errorf("card after partial redemption = %+v", fetched)
		}
	})

	t.Run("redemption is capped at the balance and drains the card", func(t *testing.T) {
		card := seedGiftCard(t, db, purchaserID, 1500)

		applied, err := repo.Redeem(card.Code, 9000)
		if err != nil {
			t.Fatalf("Redeem() error = %v", err)
		}
		if applied != 1500 {
			t.Errorf("applied = %d, want 1500", applied)
		}

		fetched, err := repo.GetByCode(card.Code)
		if err != nil {
			t.Fatalf("GetByCode() error = %v", err)
		}
		if fetched.Balance != 0 || fetched.Status != models.GiftCardRedeemed {
			t.Errorf("card after draining = %+v", fetched)
		}
	})

	t.Run("expired card applies nothing", func(t *testing.T) {
		card := seedGiftCard(t, db, purchaserID, 5000)
		if _, err := db.Exec(`UPDATE gift_cards SET expires_at = $2 WHERE id = $1`, card.ID, time.Now().Add(-time.Hour)); err != nil {
			t.Fatalf("Failed to expire card: %v", err)
		}

		applied, err := repo.Redeem(card.Code, 2000)
		if err != nil {
			t.Fatalf("Redeem() error = %v", err)
		}
		if applied != 0 {
			t.Errorf("applied = %d, want 0", applied)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := repo.Redeem("GIFT-DOESNOTEXIST", 1000); !errors.Is(err, models.ErrGiftCardNotFound) {
			t.Errorf("Redeem() error = %v, want ErrGiftCardNotFound", err)
		}
	})
}

func TestGiftCardRepository_Refund(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	_, purchaserID := seedEventFixture(t, db)

	repo := NewGiftCardRepository(db)

	t.Run("restores a drained card to active", func(t *testing.T) {
		card := seedGiftCard(t, db, purchaserID, 3000)

		applied, err := repo.Redeem(card.Code, 3000)
		if err != nil {
			t.Fatalf("Redeem() error = %v", err)
		}
		if applied != 3000 {
			t.Fatalf("applied = %d, want 3000", applied)
		}

		if err := repo.Refund(card.Code, applied); err != nil {
			t.Fatalf("Refund() error = %v", err)
		}

		fetched, err := repo.GetByCode(card.Code)
		if err != nil {
			t.Fatalf("GetByCode() error = %v", err)
		}
		if fetched.Balance != 3000 || fetched.Status != models.GiftCardActive {
			t.Errorf("card after refund = %+v", fetched)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if err := repo.Refund("GIFT-DOESNOTEXIST", 1000); !errors.Is(err, models.ErrGiftCardNotFound) {
			t.Errorf("Refund() error = %v, want ErrGiftCardNotFound", err)
		}
	})
}
