package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tickethub/internal/models"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateFromCart converts a cart snapshot into a completed order inside one
// transaction. Each line's ticket type row is locked, remaining capacity is
// re-validated, and the sold count is incremented; any shortfall aborts the
// whole order.
func (r *OrderRepository) CreateFromCart(order *models.Order, cart *models.Cart) (*models.Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range cart.Items {
		var available int
		err = tx.QueryRow(`
			SELECT (quantity_total - quantity_sold)
			FROM ticket_types
			WHERE id = $1
			FOR UPDATE`, item.TicketTypeID).Scan(&available)

		if err != nil {
			if err == sql.ErrNoRows {
				return nil, models.ErrTicketTypeNotFound
			}
			return nil, fmt.Errorf("failed to check ticket availability: %w", err)
		}

		if available < item.Quantity {
			return nil, fmt.Errorf("%w: %s (requested %d, available %d)",
				models.ErrCapacityExceeded, item.TicketName, item.Quantity, available)
		}

		_, err = tx.Exec(
			`UPDATE ticket_types SET quantity_sold = quantity_sold + $2 WHERE id = $1`,
			item.TicketTypeID, item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to record ticket sale: %w", err)
		}
	}

	now := time.Now()
	err = tx.QueryRow(`
		INSERT INTO orders (user_id, order_number, total_amount, gift_card_code, status, billing_email, billing_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at`,
		order.UserID,
		order.OrderNumber,
		order.TotalAmount,
		order.GiftCardCode,
		order.Status,
		order.BillingEmail,
		order.BillingName,
		now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range cart.Items {
		orderItem := &models.OrderItem{
			OrderID:      order.ID,
			TicketTypeID: item.TicketTypeID,
			TicketName:   item.TicketName,
			EventID:      item.EventID,
			EventTitle:   item.EventTitle,
			UnitPrice:    item.Price,
			Quantity:     item.Quantity,
		}

		err = tx.QueryRow(`
			INSERT INTO order_items (order_id, ticket_type_id, ticket_name, event_id, event_title, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			orderItem.OrderID,
			orderItem.TicketTypeID,
			orderItem.TicketName,
			orderItem.EventID,
			orderItem.EventTitle,
			orderItem.UnitPrice,
			orderItem.Quantity,
		).Scan(&orderItem.ID)

		if err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}

		order.Items = append(order.Items, orderItem)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return order, nil
}

// GetByID retrieves an order with its items
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	query := `
		SELECT id, user_id, order_number, total_amount, gift_card_code, status, billing_email, billing_name, created_at, updated_at
		FROM orders
		WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.OrderNumber,
		&order.TotalAmount,
		&order.GiftCardCode,
		&order.Status,
		&order.BillingEmail,
		&order.BillingName,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.getItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetByUser retrieves a user's orders, newest first
func (r *OrderRepository) GetByUser(userID int) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, order_number, total_amount, gift_card_code, status, billing_email, billing_name, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.OrderNumber,
			&order.TotalAmount,
			&order.GiftCardCode,
			&order.Status,
			&order.BillingEmail,
			&order.BillingName,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// OrganizerStats aggregates dashboard figures for an organizer's events
type OrganizerStats struct {
	EventCount   int `json:"event_count"`
	TicketsSold  int `json:"tickets_sold"`
	RevenueCents int `json:"revenue_cents"`
}

// GetOrganizerStats computes dashboard aggregates for an organizer
func (r *OrderRepository) GetOrganizerStats(organizerID int) (*OrganizerStats, error) {
	stats := &OrganizerStats{}

	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE organizer_id = $1`,
		organizerID,
	).Scan(&stats.EventCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count organizer events: %w", err)
	}

	err = r.db.QueryRow(`
		SELECT COALESCE(SUM(oi.quantity), 0), COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN events e ON e.id = oi.event_id
		WHERE e.organizer_id = $1 AND o.status = $2`,
		organizerID, models.OrderCompleted,
	).Scan(&stats.TicketsSold, &stats.RevenueCents)
	if err != nil {
		return nil, fmt.Errorf("failed to compute organizer sales: %w", err)
	}

	return stats, nil
}

func (r *OrderRepository) getItems(orderID int) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, ticket_type_id, ticket_name, event_id, event_title, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.TicketTypeID,
			&item.TicketName,
			&item.EventID,
			&item.EventTitle,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
