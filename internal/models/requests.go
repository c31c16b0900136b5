package models

import "errors"

// TicketTypeCreateRequest represents a request to create a new ticket type
type TicketTypeCreateRequest struct {
	EventID       int    `json:"event_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int    `json:"price"`
	QuantityTotal int    `json:"quantity_total"`
}

// TicketTypeUpdateRequest represents a request to update a ticket type
type TicketTypeUpdateRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int    `json:"price"`
	QuantityTotal int    `json:"quantity_total"`
}

// Validate validates ticket type creation data
func (req *TicketTypeCreateRequest) Validate() error {
	if err := validateTicketTypeName(req.Name); err != nil {
		return err
	}

	if err := validateTicketTypePrice(req.Price); err != nil {
		return err
	}

	if req.QuantityTotal <= 0 {
		return errors.New("ticket quantity must be greater than 0")
	}

	if err := validateTicketTypeQuantity(req.QuantityTotal); err != nil {
		return err
	}

	return validateTicketTypeDescription(req.Description)
}

// Validate validates ticket type update data
func (req *TicketTypeUpdateRequest) Validate() error {
	if err := validateTicketTypeName(req.Name); err != nil {
		return err
	}

	if err := validateTicketTypePrice(req.Price); err != nil {
		return err
	}

	if req.QuantityTotal <= 0 {
		return errors.New("ticket quantity must be greater than 0")
	}

	if err := validateTicketTypeQuantity(req.QuantityTotal); err != nil {
		return err
	}

	return validateTicketTypeDescription(req.Description)
}

// AddToCartRequest represents a request to add tickets to the cart
type AddToCartRequest struct {
	EventID      int `json:"event_id"`
	TicketTypeID int `json:"ticket_type_id"`
	Quantity     int `json:"quantity"`
}

// Validate validates add-to-cart data
func (req *AddToCartRequest) Validate() error {
	if req.EventID <= 0 {
		return errors.New("event id is required")
	}

	if req.TicketTypeID <= 0 {
		return errors.New("ticket type id is required")
	}

	if req.Quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}

	return nil
}

// UpdateCartItemRequest represents a request to set a line item quantity.
// Zero removes the line item.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest represents a request to convert the cart into an order
type CheckoutRequest struct {
	BillingEmail string `json:"billing_email"`
	BillingName  string `json:"billing_name"`
	GiftCardCode string `json:"gift_card_code,omitempty"`
}

// Validate validates checkout data
func (req *CheckoutRequest) Validate() error {
	return validateOrderBillingInfo(req.BillingEmail, req.BillingName)
}

// GiftCardPurchaseRequest represents a request to buy a gift card
type GiftCardPurchaseRequest struct {
	Amount         int    `json:"amount"` // in cents
	RecipientEmail string `json:"recipient_email"`
}

// Validate validates gift card purchase data
func (req *GiftCardPurchaseRequest) Validate() error {
	if req.Amount <= 0 {
		return errors.New("gift card amount must be greater than 0")
	}

	// Maximum gift card value of $1,000
	if req.Amount > 100000 {
		return errors.New("gift card amount cannot exceed $1,000")
	}

	if req.RecipientEmail != "" && !emailRegex.MatchString(req.RecipientEmail) {
		return errors.New("recipient email format is invalid")
	}

	return nil
}

// ResaleListingCreateRequest represents a request to list a ticket for resale
type ResaleListingCreateRequest struct {
	TicketTypeID int `json:"ticket_type_id"`
	AskingPrice  int `json:"asking_price"` // in cents
}

// Validate validates resale listing creation data
func (req *ResaleListingCreateRequest) Validate() error {
	if req.TicketTypeID <= 0 {
		return errors.New("ticket type id is required")
	}

	if req.AskingPrice <= 0 {
		return errors.New("asking price must be greater than 0")
	}

	return nil
}
