package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"tickethub/internal/models"

	_ "github.com/lib/pq"
)

// setupTestDB connects to the database named by DATABASE_URL and skips the
// test when it is not reachable
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("Failed to ping test database: %v", err)
	}

	return db
}

// seedEventFixture inserts a user, category, and event, and removes them when
// the test finishes. Ticket types cascade with the event.
func seedEventFixture(t *testing.T, db *sql.DB) (eventID, organizerID int) {
	t.Helper()

	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
	err := db.QueryRow(
		`INSERT INTO users (email, full_name, role) VALUES ($1, 'Integration Organizer', 'organizer') RETURNING id`,
		email,
	).Scan(&organizerID)
	if err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	var categoryID int
	slug := fmt.Sprintf("it-%d", time.Now().UnixNano())
	err = db.QueryRow(
		`INSERT INTO categories (name, slug) VALUES ('Integration', $1) RETURNING id`,
		slug,
	).Scan(&categoryID)
	if err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}

	err = db.QueryRow(`
		INSERT INTO events (title, description, start_date, end_date, location, category_id, organizer_id, status)
		VALUES ('Integration Event', '', $1, $2, 'Test Hall', $3, $4, 'published')
		RETURNING id`,
		time.Now().Add(24*time.Hour), time.Now().Add(28*time.Hour), categoryID, organizerID,
	).Scan(&eventID)
	if err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}

	t.Cleanup(func() {
		db.Exec(`DELETE FROM events WHERE id = $1`, eventID)
		db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
		db.Exec(`DELETE FROM users WHERE id = $1`, organizerID)
	})

	return eventID, organizerID
}

func TestTicketRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	eventID, _ := seedEventFixture(t, db)

	repo := NewTicketRepository(db)

	created, err := repo.CreateTicketType(&models.TicketTypeCreateRequest{
		EventID:       eventID,
		Name:          "General Admission",
		Price:         5000,
		QuantityTotal: 100,
	})
	if err != nil {
		t.Fatalf("CreateTicketType() error = %v", err)
	}
	if created.QuantitySold != 0 {
		t.Errorf("new ticket type sold count = %d, want 0", created.QuantitySold)
	}

	fetched, err := repo.GetTicketTypeByID(created.ID)
	if err != nil {
		t.Fatalf("GetTicketTypeByID() error = %v", err)
	}
	if fetched.Name != "General Admission" || fetched.Price != 5000 {
		t.Errorf("fetched ticket type = %+v", fetched)
	}
}

func TestTicketRepository_RemainingCapacity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	eventID, _ := seedEventFixture(t, db)

	repo := NewTicketRepository(db)

	created, err := repo.CreateTicketType(&models.TicketTypeCreateRequest{
		EventID:       eventID,
		Name:          "VIP",
		Price:         12000,
		QuantityTotal: 10,
	})
	if err != nil {
		t.Fatalf("CreateTicketType() error = %v", err)
	}

	if _, err := db.Exec(`UPDATE ticket_types SET quantity_sold = 8 WHERE id = $1`, created.ID); err != nil {
		t.Fatalf("Failed to record sales: %v", err)
	}

	remaining, err := repo.RemainingCapacity(created.ID)
	if err != nil {
		t.Fatalf("RemainingCapacity() error = %v", err)
	}
	if remaining != 2 {
		t.Errorf("RemainingCapacity() = %d, want 2", remaining)
	}

	if _, err := repo.RemainingCapacity(0); !errors.Is(err, models.ErrTicketTypeNotFound) {
		t.Errorf("RemainingCapacity(0) error = %v, want ErrTicketTypeNotFound", err)
	}
}

func TestTicketRepository_UpdateBelowSoldRefused(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	eventID, _ := seedEventFixture(t, db)

	repo := NewTicketRepository(db)

	created, err := repo.CreateTicketType(&models.TicketTypeCreateRequest{
		EventID:       eventID,
		Name:          "Standard",
		Price:         2000,
		QuantityTotal: 50,
	})
	if err != nil {
		t.Fatalf("CreateTicketType() error = %v", err)
	}

	if _, err := db.Exec(`UPDATE ticket_types SET quantity_sold = 20 WHERE id = $1`, created.ID); err != nil {
		t.Fatalf("Failed to record sales: %v", err)
	}

	_, err = repo.UpdateTicketType(created.ID, &models.TicketTypeUpdateRequest{
		Name:          "Standard",
		Price:         2000,
		QuantityTotal: 19,
	})
	if err == nil {
		t.Fatal("UpdateTicketType() below sold count succeeded, want error")
	}

	updated, err := repo.UpdateTicketType(created.ID, &models.TicketTypeUpdateRequest{
		Name:          "Standard",
		Price:         2000,
		QuantityTotal: 20,
	})
	if err != nil {
		t.Fatalf("UpdateTicketType() to sold count error = %v", err)
	}
	if updated.QuantityTotal != 20 {
		t.Errorf("QuantityTotal = %d, want 20", updated.QuantityTotal)
	}
}

func TestTicketRepository_DeleteBlockedBySales(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	eventID, _ := seedEventFixture(t, db)

	repo := NewTicketRepository(db)

	created, err := repo.CreateTicketType(&models.TicketTypeCreateRequest{
		EventID:       eventID,
		Name:          "Limited",
		Price:         8000,
		QuantityTotal: 5,
	})
	if err != nil {
		t.Fatalf("CreateTicketType() error = %v", err)
	}

	if _, err := db.Exec(`UPDATE ticket_types SET quantity_sold = 1 WHERE id = $1`, created.ID); err != nil {
		t.Fatalf("Failed to record sale: %v", err)
	}

	if err := repo.DeleteTicketType(created.ID); !errors.Is(err, models.ErrDeletionBlocked) {
		t.Errorf("DeleteTicketType() error = %v, want ErrDeletionBlocked", err)
	}

	if _, err := db.Exec(`UPDATE ticket_types SET quantity_sold = 0 WHERE id = $1`, created.ID); err != nil {
		t.Fatalf("Failed to reset sales: %v", err)
	}

	if err := repo.DeleteTicketType(created.ID); err != nil {
		t.Errorf("DeleteTicketType() on unsold type error = %v", err)
	}
}
