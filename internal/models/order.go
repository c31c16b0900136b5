package models

import (
	"errors"
	"regexp"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
)

// Order represents a completed checkout in the system
type Order struct {
	ID           int         `json:"id" db:"id"`
	UserID       int         `json:"user_id" db:"user_id"`
	OrderNumber  string      `json:"order_number" db:"order_number"`
	TotalAmount  int         `json:"total_amount" db:"total_amount"` // Amount in cents
	GiftCardCode string      `json:"gift_card_code,omitempty" db:"gift_card_code"`
	Status       OrderStatus `json:"status" db:"status"`
	BillingEmail string      `json:"billing_email" db:"billing_email"`
	BillingName  string      `json:"billing_name" db:"billing_name"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`

	// Related data
	Items []*OrderItem `json:"items,omitempty"`
}

// OrderItem is one cart line item frozen into an order at checkout
type OrderItem struct {
	ID           int    `json:"id" db:"id"`
	OrderID      int    `json:"order_id" db:"order_id"`
	TicketTypeID int    `json:"ticket_type_id" db:"ticket_type_id"`
	TicketName   string `json:"ticket_name" db:"ticket_name"`
	EventID      int    `json:"event_id" db:"event_id"`
	EventTitle   string `json:"event_title" db:"event_title"`
	UnitPrice    int    `json:"unit_price" db:"unit_price"` // in cents
	Quantity     int    `json:"quantity" db:"quantity"`
}

var (
	// Order number format: ORD-YYYYMMDD-XXXXXX
	orderNumberRegex = regexp.MustCompile(`^ORD-\d{8}-[0-9a-f]{6}$`)
	// Email validation regex for orders
	orderEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate validates the order data
func (o *Order) Validate() error {
	if err := o.validateOrderNumber(); err != nil {
		return err
	}

	if err := validateOrderTotalAmount(o.TotalAmount); err != nil {
		return err
	}

	if err := validateOrderStatus(o.Status); err != nil {
		return err
	}

	return validateOrderBillingInfo(o.BillingEmail, o.BillingName)
}

// validateOrderNumber validates the order number
func (o *Order) validateOrderNumber() error {
	if o.OrderNumber == "" {
		return errors.New("order number is required")
	}

	if !orderNumberRegex.MatchString(o.OrderNumber) {
		return errors.New("order number format is invalid")
	}

	return nil
}

// validateOrderTotalAmount validates an order total
func validateOrderTotalAmount(amount int) error {
	if amount < 0 {
		return errors.New("order total cannot be negative")
	}

	return nil
}

// validateOrderStatus validates an order status against the closed set
func validateOrderStatus(status OrderStatus) error {
	switch status {
	case OrderPending, OrderCompleted, OrderCancelled, OrderRefunded:
		return nil
	default:
		return errors.New("invalid order status")
	}
}

// validateOrderBillingInfo validates order billing information
func validateOrderBillingInfo(email, name string) error {
	if email == "" {
		return errors.New("billing email is required")
	}

	if !orderEmailRegex.MatchString(email) {
		return errors.New("billing email format is invalid")
	}

	if name == "" {
		return errors.New("billing name is required")
	}

	return nil
}

// IsCompleted returns true if the order completed successfully
func (o *Order) IsCompleted() bool {
	return o.Status == OrderCompleted
}

// CanBeCancelled returns true if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPending
}

// TicketCount returns the total number of tickets in the order
func (o *Order) TicketCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
