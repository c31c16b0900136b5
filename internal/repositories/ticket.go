package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tickethub/internal/models"
)

// TicketRepository handles ticket type data operations
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateTicketType creates a new ticket type
func (r *TicketRepository) CreateTicketType(req *models.TicketTypeCreateRequest) (*models.TicketType, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO ticket_types (event_id, name, description, price, quantity_total, quantity_sold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, event_id, name, description, price, quantity_total, quantity_sold, created_at`

	ticketType := &models.TicketType{}
	err := r.db.QueryRow(
		query,
		req.EventID,
		req.Name,
		req.Description,
		req.Price,
		req.QuantityTotal,
		0, // Initial sold count
		time.Now(),
	).Scan(
		&ticketType.ID,
		&ticketType.EventID,
		&ticketType.Name,
		&ticketType.Description,
		&ticketType.Price,
		&ticketType.QuantityTotal,
		&ticketType.QuantitySold,
		&ticketType.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create ticket type: %w", err)
	}

	return ticketType, nil
}

// GetTicketTypeByID retrieves a ticket type by ID
func (r *TicketRepository) GetTicketTypeByID(id int) (*models.TicketType, error) {
	query := `
		SELECT id, event_id, name, description, price, quantity_total, quantity_sold, created_at
		FROM ticket_types
		WHERE id = $1`

	ticketType := &models.TicketType{}
	err := r.db.QueryRow(query, id).Scan(
		&ticketType.ID,
		&ticketType.EventID,
		&ticketType.Name,
		&ticketType.Description,
		&ticketType.Price,
		&ticketType.QuantityTotal,
		&ticketType.QuantitySold,
		&ticketType.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}

	return ticketType, nil
}

// GetTicketTypesByEvent retrieves all ticket types for an event
func (r *TicketRepository) GetTicketTypesByEvent(eventID int) ([]*models.TicketType, error) {
	query := `
		SELECT id, event_id, name, description, price, quantity_total, quantity_sold, created_at
		FROM ticket_types
		WHERE event_id = $1
		ORDER BY price ASC, created_at ASC`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket types by event: %w", err)
	}
	defer rows.Close()

	var ticketTypes []*models.TicketType
	for rows.Next() {
		ticketType := &models.TicketType{}
		err := rows.Scan(
			&ticketType.ID,
			&ticketType.EventID,
			&ticketType.Name,
			&ticketType.Description,
			&ticketType.Price,
			&ticketType.QuantityTotal,
			&ticketType.QuantitySold,
			&ticketType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket type: %w", err)
		}
		ticketTypes = append(ticketTypes, ticketType)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket types: %w", err)
	}

	return ticketTypes, nil
}

// UpdateTicketType updates a ticket type. Capacity cannot drop below the
// sold count.
func (r *TicketRepository) UpdateTicketType(id int, req *models.TicketTypeUpdateRequest) (*models.TicketType, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := r.GetTicketTypeByID(id)
	if err != nil {
		return nil, err
	}

	if !existing.CanUpdateQuantity(req.QuantityTotal) {
		return nil, fmt.Errorf("cannot reduce quantity below sold tickets (%d)", existing.QuantitySold)
	}

	query := `
		UPDATE ticket_types
		SET name = $2, description = $3, price = $4, quantity_total = $5
		WHERE id = $1
		RETURNING id, event_id, name, description, price, quantity_total, quantity_sold, created_at`

	ticketType := &models.TicketType{}
	err = r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Description,
		req.Price,
		req.QuantityTotal,
	).Scan(
		&ticketType.ID,
		&ticketType.EventID,
		&ticketType.Name,
		&ticketType.Description,
		&ticketType.Price,
		&ticketType.QuantityTotal,
		&ticketType.QuantitySold,
		&ticketType.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to update ticket type: %w", err)
	}

	return ticketType, nil
}

// DeleteTicketType deletes a ticket type. Deletion is refused once any
// tickets have been sold.
func (r *TicketRepository) DeleteTicketType(id int) error {
	ticketType, err := r.GetTicketTypeByID(id)
	if err != nil {
		return err
	}

	if !ticketType.CanDelete() {
		return models.ErrDeletionBlocked
	}

	result, err := r.db.Exec(`DELETE FROM ticket_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrTicketTypeNotFound
	}

	return nil
}

// RemainingCapacity returns how many tickets of a type can still be sold.
// Implements the cart store's capacity resolver.
func (r *TicketRepository) RemainingCapacity(ticketTypeID int) (int, error) {
	var total, sold int
	err := r.db.QueryRow(
		`SELECT quantity_total, quantity_sold FROM ticket_types WHERE id = $1`,
		ticketTypeID,
	).Scan(&total, &sold)

	if err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrTicketTypeNotFound
		}
		return 0, fmt.Errorf("failed to check remaining capacity: %w", err)
	}

	remaining := total - sold
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
