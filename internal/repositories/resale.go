package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tickethub/internal/models"
)

// ResaleRepository handles resale listing data operations
type ResaleRepository struct {
	db *sql.DB
}

// NewResaleRepository creates a new resale repository
func NewResaleRepository(db *sql.DB) *ResaleRepository {
	return &ResaleRepository{db: db}
}

// Create inserts a new resale listing
func (r *ResaleRepository) Create(listing *models.ResaleListing) (*models.ResaleListing, error) {
	if err := listing.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO resale_listings (seller_id, event_id, ticket_type_id, ticket_name, face_value, asking_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		query,
		listing.SellerID,
		listing.EventID,
		listing.TicketTypeID,
		listing.TicketName,
		listing.FaceValue,
		listing.AskingPrice,
		listing.Status,
		time.Now(),
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create resale listing: %w", err)
	}

	return listing, nil
}

// GetByID retrieves a resale listing by ID
func (r *ResaleRepository) GetByID(id int) (*models.ResaleListing, error) {
	query := `
		SELECT id, seller_id, event_id, ticket_type_id, ticket_name, face_value, asking_price, status, created_at, updated_at
		FROM resale_listings
		WHERE id = $1`

	listing := &models.ResaleListing{}
	err := r.db.QueryRow(query, id).Scan(
		&listing.ID,
		&listing.SellerID,
		&listing.EventID,
		&listing.TicketTypeID,
		&listing.TicketName,
		&listing.FaceValue,
		&listing.AskingPrice,
		&listing.Status,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get resale listing: %w", err)
	}

	return listing, nil
}

// GetActiveByEvent retrieves active listings for an event, cheapest first
func (r *ResaleRepository) GetActiveByEvent(eventID int) ([]*models.ResaleListing, error) {
	query := `
		SELECT id, seller_id, event_id, ticket_type_id, ticket_name, face_value, asking_price, status, created_at, updated_at
		FROM resale_listings
		WHERE event_id = $1 AND status = $2
		ORDER BY asking_price ASC`

	rows, err := r.db.Query(query, eventID, models.ResaleActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get resale listings: %w", err)
	}
	defer rows.Close()

	var listings []*models.ResaleListing
	for rows.Next() {
		listing := &models.ResaleListing{}
		err := rows.Scan(
			&listing.ID,
			&listing.SellerID,
			&listing.EventID,
			&listing.TicketTypeID,
			&listing.TicketName,
			&listing.FaceValue,
			&listing.AskingPrice,
			&listing.Status,
			&listing.CreatedAt,
			&listing.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resale listing: %w", err)
		}
		listings = append(listings, listing)
	}

	return listings, rows.Err()
}

// UpdateStatus transitions a listing's status
func (r *ResaleRepository) UpdateStatus(id int, status models.ResaleStatus) error {
	result, err := r.db.Exec(
		`UPDATE resale_listings SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update resale listing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrListingNotFound
	}

	return nil
}
