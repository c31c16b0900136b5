package models

import (
	"testing"
)

func TestTicketType_Validate(t *testing.T) {
	tests := []struct {
		name       string
		ticketType TicketType
		wantErr    bool
		errMsg     string
	}{
		{
			name: "valid ticket type",
			ticketType: TicketType{
				Name:          "General Admission",
				Price:         2500, // $25.00
				QuantityTotal: 100,
			},
			wantErr: false,
		},
		{
			name: "invalid name - empty",
			ticketType: TicketType{
				Name:          "",
				Price:         2500,
				QuantityTotal: 100,
			},
			wantErr: true,
			errMsg:  "ticket type name is required",
		},
		{
			name: "invalid name - whitespace only",
			ticketType: TicketType{
				Name:          "   ",
				Price:         2500,
				QuantityTotal: 100,
			},
			wantErr: true,
			errMsg:  "ticket type name cannot be only whitespace",
		},
		{
			name: "invalid price - negative",
			ticketType: TicketType{
				Name:          "General Admission",
				Price:         -100,
				QuantityTotal: 100,
			},
			wantErr: true,
			errMsg:  "ticket price cannot be negative",
		},
		{
			name: "invalid price - exceeds maximum",
			ticketType: TicketType{
				Name:          "General Admission",
				Price:         1000001,
				QuantityTotal: 100,
			},
			wantErr: true,
			errMsg:  "ticket price cannot exceed $10,000",
		},
		{
			name: "invalid quantity - negative",
			ticketType: TicketType{
				Name:          "General Admission",
				Price:         2500,
				QuantityTotal: -1,
			},
			wantErr: true,
			errMsg:  "ticket quantity cannot be negative",
		},
		{
			name: "invalid sold count - exceeds capacity",
			ticketType: TicketType{
				Name:          "General Admission",
				Price:         2500,
				QuantityTotal: 100,
				QuantitySold:  101,
			},
			wantErr: true,
			errMsg:  "sold count cannot exceed total capacity",
		},
		{
			name: "free ticket with zero capacity is valid",
			ticketType: TicketType{
				Name:          "Waitlist",
				Price:         0,
				QuantityTotal: 0,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ticketType.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("TicketType.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("TicketType.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestTicketType_Remaining(t *testing.T) {
	tests := []struct {
		name       string
		ticketType TicketType
		want       int
	}{
		{
			name:       "partially sold",
			ticketType: TicketType{QuantityTotal: 100, QuantitySold: 30},
			want:       70,
		},
		{
			name:       "sold out",
			ticketType: TicketType{QuantityTotal: 100, QuantitySold: 100},
			want:       0,
		},
		{
			name:       "zero capacity",
			ticketType: TicketType{QuantityTotal: 0, QuantitySold: 0},
			want:       0,
		},
		{
			name:       "oversold never goes negative",
			ticketType: TicketType{QuantityTotal: 100, QuantitySold: 105},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ticketType.Remaining(); got != tt.want {
				t.Errorf("TicketType.Remaining() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTicketType_IsSoldOut(t *testing.T) {
	tests := []struct {
		name       string
		ticketType TicketType
		want       bool
	}{
		{
			name:       "tickets remain",
			ticketType: TicketType{QuantityTotal: 100, QuantitySold: 99},
			want:       false,
		},
		{
			name:       "exactly sold out",
			ticketType: TicketType{QuantityTotal: 100, QuantitySold: 100},
			want:       true,
		},
		{
			name:       "zero capacity counts as sold out",
			ticketType: TicketType{QuantityTotal: 0, QuantitySold: 0},
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ticketType.IsSoldOut(); got != tt.want {
				t.Errorf("TicketType.IsSoldOut() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTicketType_CanDelete(t *testing.T) {
	unsold := TicketType{QuantityTotal: 100, QuantitySold: 0}
	if !unsold.CanDelete() {
		t.Error("TicketType.CanDelete() = false for unsold type, want true")
	}

	sold := TicketType{QuantityTotal: 100, QuantitySold: 1}
	if sold.CanDelete() {
		t.Error("TicketType.CanDelete() = true for type with sales, want false")
	}
}

func TestTicketType_CanUpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		ticketType  TicketType
		newQuantity int
		want        bool
	}{
		{
			name:        "increase is always allowed",
			ticketType:  TicketType{QuantityTotal: 100, QuantitySold: 50},
			newQuantity: 200,
			want:        true,
		},
		{
			name:        "decrease to sold count is allowed",
			ticketType:  TicketType{QuantityTotal: 100, QuantitySold: 50},
			newQuantity: 50,
			want:        true,
		},
		{
			name:        "decrease below sold count is refused",
			ticketType:  TicketType{QuantityTotal: 100, QuantitySold: 50},
			newQuantity: 49,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ticketType.CanUpdateQuantity(tt.newQuantity); got != tt.want {
				t.Errorf("TicketType.CanUpdateQuantity(%d) = %v, want %v", tt.newQuantity, got, tt.want)
			}
		})
	}
}

func TestTicketType_PriceInCurrency(t *testing.T) {
	tt := TicketType{Price: 2550}
	if got := tt.PriceInCurrency(); got != 25.50 {
		t.Errorf("TicketType.PriceInCurrency() = %v, want 25.50", got)
	}
}

func TestIsHotEvent(t *testing.T) {
	tests := []struct {
		name        string
		ticketTypes []*TicketType
		want        bool
	}{
		{
			name: "above threshold",
			ticketTypes: []*TicketType{
				{QuantityTotal: 100, QuantitySold: 90},
			},
			want: true,
		},
		{
			name: "exactly at threshold",
			ticketTypes: []*TicketType{
				{QuantityTotal: 100, QuantitySold: 80},
			},
			want: true,
		},
		{
			name: "below threshold",
			ticketTypes: []*TicketType{
				{QuantityTotal: 100, QuantitySold: 79},
			},
			want: false,
		},
		{
			name: "aggregated across types",
			ticketTypes: []*TicketType{
				{QuantityTotal: 100, QuantitySold: 100},
				{QuantityTotal: 100, QuantitySold: 60},
			},
			want: true,
		},
		{
			name: "one sold out type does not make a large event hot",
			ticketTypes: []*TicketType{
				{QuantityTotal: 10, QuantitySold: 10},
				{QuantityTotal: 1000, QuantitySold: 0},
			},
			want: false,
		},
		{
			name:        "no ticket types",
			ticketTypes: nil,
			want:        false,
		},
		{
			name: "zero aggregate capacity",
			ticketTypes: []*TicketType{
				{QuantityTotal: 0, QuantitySold: 0},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHotEvent(tt.ticketTypes); got != tt.want {
				t.Errorf("IsHotEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}
