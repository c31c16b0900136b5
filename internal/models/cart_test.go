package models

import (
	"testing"
)

func TestCart_Aggregates(t *testing.T) {
	tests := []struct {
		name         string
		cart         Cart
		wantCount    int
		wantSubtotal int
		wantIsEmpty  bool
	}{
		{
			name:         "empty cart",
			cart:         Cart{Version: CartDocumentVersion},
			wantCount:    0,
			wantSubtotal: 0,
			wantIsEmpty:  true,
		},
		{
			name: "single line item",
			cart: Cart{
				Version: CartDocumentVersion,
				Items: []CartLineItem{
					{TicketTypeID: 1, Price: 5000, Quantity: 2},
				},
			},
			wantCount:    2,
			wantSubtotal: 10000,
			wantIsEmpty:  false,
		},
		{
			name: "multiple line items",
			cart: Cart{
				Version: CartDocumentVersion,
				Items: []CartLineItem{
					{TicketTypeID: 1, Price: 5000, Quantity: 2},
					{TicketTypeID: 2, Price: 1500, Quantity: 3},
				},
			},
			wantCount:    5,
			wantSubtotal: 14500,
			wantIsEmpty:  false,
		},
		{
			name: "free tickets contribute quantity but not subtotal",
			cart: Cart{
				Version: CartDocumentVersion,
				Items: []CartLineItem{
					{TicketTypeID: 1, Price: 0, Quantity: 4},
				},
			},
			wantCount:    4,
			wantSubtotal: 0,
			wantIsEmpty:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cart.ItemCount(); got != tt.wantCount {
				t.Errorf("Cart.ItemCount() = %v, want %v", got, tt.wantCount)
			}
			if got := tt.cart.Subtotal(); got != tt.wantSubtotal {
				t.Errorf("Cart.Subtotal() = %v, want %v", got, tt.wantSubtotal)
			}
			if got := tt.cart.IsEmpty(); got != tt.wantIsEmpty {
				t.Errorf("Cart.IsEmpty() = %v, want %v", got, tt.wantIsEmpty)
			}
		})
	}
}

func TestCart_FindItem(t *testing.T) {
	cart := Cart{
		Items: []CartLineItem{
			{TicketTypeID: 10},
			{TicketTypeID: 20},
		},
	}

	if got := cart.FindItem(20); got != 1 {
		t.Errorf("Cart.FindItem(20) = %v, want 1", got)
	}
	if got := cart.FindItem(30); got != -1 {
		t.Errorf("Cart.FindItem(30) = %v, want -1", got)
	}
}

func TestCart_Clone(t *testing.T) {
	original := &Cart{
		Version: CartDocumentVersion,
		Items: []CartLineItem{
			{TicketTypeID: 1, Quantity: 2, Price: 500},
		},
	}

	clone := original.Clone()
	clone.Items[0].Quantity = 99

	if original.Items[0].Quantity != 2 {
		t.Error("Cart.Clone() shares item storage with the original")
	}
	if clone.Version != CartDocumentVersion {
		t.Errorf("Cart.Clone() version = %v, want %v", clone.Version, CartDocumentVersion)
	}
}

func TestNewCart(t *testing.T) {
	cart := NewCart()
	if cart.Version != CartDocumentVersion {
		t.Errorf("NewCart() version = %v, want %v", cart.Version, CartDocumentVersion)
	}
	if !cart.IsEmpty() {
		t.Error("NewCart() is not empty")
	}
}

func TestCartLineItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    CartLineItem
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid line item",
			item:    CartLineItem{TicketTypeID: 1, Price: 2500, Quantity: 2},
			wantErr: false,
		},
		{
			name:    "missing ticket type",
			item:    CartLineItem{Price: 2500, Quantity: 2},
			wantErr: true,
			errMsg:  "ticket type id is required",
		},
		{
			name:    "zero quantity",
			item:    CartLineItem{TicketTypeID: 1, Price: 2500, Quantity: 0},
			wantErr: true,
			errMsg:  "quantity must be greater than 0",
		},
		{
			name:    "negative price",
			item:    CartLineItem{TicketTypeID: 1, Price: -1, Quantity: 1},
			wantErr: true,
			errMsg:  "ticket price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("CartLineItem.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("CartLineItem.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestCartLineItem_Subtotal(t *testing.T) {
	item := CartLineItem{Price: 1250, Quantity: 3}
	if got := item.Subtotal(); got != 3750 {
		t.Errorf("CartLineItem.Subtotal() = %v, want 3750", got)
	}
}
