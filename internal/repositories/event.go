package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tickethub/internal/models"
)

// EventRepository handles event and category data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventSearchFilters represents filters for event discovery
type EventSearchFilters struct {
	CategorySlug string
	Query        string
	UpcomingOnly bool
	OrganizerID  int
	Limit        int
	Offset       int
}

// Create inserts a new event
func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO events (title, description, start_date, end_date, location, category_id, organizer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	err := r.db.QueryRow(
		query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.CategoryID,
		event.OrganizerID,
		event.Status,
		now,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id int) (*models.Event, error) {
	query := `
		SELECT id, title, description, start_date, end_date, location, category_id, organizer_id, status, created_at, updated_at
		FROM events
		WHERE id = $1`

	event := &models.Event{}
	err := r.db.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartDate,
		&event.EndDate,
		&event.Location,
		&event.CategoryID,
		&event.OrganizerID,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// Search retrieves published events matching the filters, newest first
func (r *EventRepository) Search(filters EventSearchFilters) ([]*models.Event, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIndex))
	args = append(args, models.StatusPublished)
	argIndex++

	if filters.CategorySlug != "" {
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", argIndex))
		args = append(args, filters.CategorySlug)
		argIndex++
	}

	if filters.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(e.title ILIKE $%d OR e.description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filters.Query+"%")
		argIndex++
	}

	if filters.UpcomingOnly {
		conditions = append(conditions, "e.start_date > NOW()")
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.title, e.description, e.start_date, e.end_date, e.location, e.category_id, e.organizer_id, e.status, e.created_at, e.updated_at,
		       c.id, c.name, c.slug, c.description, c.created_at
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE %s
		ORDER BY e.start_date ASC`, strings.Join(conditions, " AND "))

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
		argIndex++
	}

	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filters.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	defer rows.Close()

	return scanEventsWithCategory(rows)
}

// GetByOrganizer retrieves all events owned by an organizer
func (r *EventRepository) GetByOrganizer(organizerID int) ([]*models.Event, error) {
	query := `
		SELECT id, title, description, start_date, end_date, location, category_id, organizer_id, status, created_at, updated_at
		FROM events
		WHERE organizer_id = $1
		ORDER BY start_date DESC`

	rows, err := r.db.Query(query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.StartDate,
			&event.EndDate,
			&event.Location,
			&event.CategoryID,
			&event.OrganizerID,
			&event.Status,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// GetCategories retrieves all categories ordered by name
func (r *EventRepository) GetCategories() ([]*models.Category, error) {
	query := `
		SELECT id, name, slug, description, created_at
		FROM categories
		ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.Description,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func scanEventsWithCategory(rows *sql.Rows) ([]*models.Event, error) {
	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		category := &models.Category{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.StartDate,
			&event.EndDate,
			&event.Location,
			&event.CategoryID,
			&event.OrganizerID,
			&event.Status,
			&event.CreatedAt,
			&event.UpdatedAt,
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.Description,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Category = category
		events = append(events, event)
	}

	return events, rows.Err()
}
