package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"tickethub/internal/models"
)

func seedTicketType(t *testing.T, db *sql.DB, eventID, total, sold, price int) int {
	t.Helper()

	var id int
	err := db.QueryRow(`
		INSERT INTO ticket_types (event_id, name, price, quantity_total, quantity_sold)
		VALUES ($1, 'Seeded', $2, $3, $4)
		RETURNING id`,
		eventID, price, total, sold,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed ticket type: %v", err)
	}
	return id
}

func testOrder(userID int) *models.Order {
	return &models.Order{
		UserID:       userID,
		OrderNumber:  fmt.Sprintf("ORD-20260829-%06x", time.Now().UnixNano()%0xffffff),
		Status:       models.OrderCompleted,
		BillingEmail: "buyer@example.com",
		BillingName:  "Integration Buyer",
	}
}

func TestOrderRepository_CreateFromCart(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	eventID, organizerID := seedEventFixture(t, db)
	ticketTypeID := seedTicketType(t, db, eventID, 10, 0, 5000)

	repo := NewOrderRepository(db)

	cart := models.NewCart()
	cart.Items = append(cart.Items, models.CartLineItem{
		TicketTypeID: ticketTypeID,
		TicketName:   "Seeded",
		Price:        5000,
		Quantity:     3,
		EventID:      eventID,
		EventTitle:   "Integration Event",
	})

	order := testOrder(organizerID)
	order.TotalAmount = 15000

	created, err := repo.CreateFromCart(order, cart)
	if err != nil {
		t.Fatalf("CreateFromCart() error = %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM orders WHERE id = $1`, created.ID)
	})

	if created.ID == 0 {
		t.Error("created order has no ID")
	}
	if len(created.Items) != 1 || created.Items[0].Quantity != 3 {
		t.Errorf("created order items = %+v", created.Items)
	}

	var sold int
	if err := db.QueryRow(`SELECT quantity_sold FROM ticket_types WHERE id = $1`, ticketTypeID).Scan(&sold); err != nil {
		t.Fatalf("Failed to read sold count: %v", err)
	}
	if sold != 3 {
		t.Errorf("quantity_sold after checkout = %d, want 3", sold)
	}

	fetched, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if fetched.OrderNumber != order.OrderNumber || fetched.TotalAmount != 15000 {
		t.Errorf("fetched order = %+v", fetched)
	}
}

func TestOrderRepository_CreateFromCart_CapacityShortfallAborts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	eventID, organizerID := seedEventFixture(t, db)

	// Two lines: the first has room, the second does not. The shortfall must
	// roll back the whole order, including the first line's sold increment.
	okTypeID := seedTicketType(t, db, eventID, 10, 0, 2000)
	fullTypeID := seedTicketType(t, db, eventID, 10, 9, 8000)

	repo := NewOrderRepository(db)

	cart := models.NewCart()
	cart.Items = append(cart.Items,
		models.CartLineItem{TicketTypeID: okTypeID, TicketName: "Open", Price: 2000, Quantity: 2, EventID: eventID, EventTitle: "Integration Event"},
		models.CartLineItem{TicketTypeID: fullTypeID, TicketName: "Nearly Full", Price: 8000, Quantity: 2, EventID: eventID, EventTitle: "Integration Event"},
	)

	order := testOrder(organizerID)
	order.TotalAmount = 20000

	_, err := repo.CreateFromCart(order, cart)
	if !errors.Is(err, models.ErrCapacityExceeded) {
		t.Fatalf("CreateFromCart() error = %v, want ErrCapacityExceeded", err)
	}

	var sold int
	if err := db.QueryRow(`SELECT quantity_sold FROM ticket_types WHERE id = $1`, okTypeID).Scan(&sold); err != nil {
		t.Fatalf("Failed to read sold count: %v", err)
	}
	if sold != 0 {
		t.Errorf("quantity_sold after aborted checkout = %d, want 0", sold)
	}

	var orderCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM orders WHERE order_number = $1`, order.OrderNumber).Scan(&orderCount); err != nil {
		t.Fatalf("Failed to count orders: %v", err)
	}
	if orderCount != 0 {
		t.Errorf("orders written after aborted checkout = %d, want 0", orderCount)
	}
}

func TestOrderRepository_GetByUser(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	eventID, organizerID := seedEventFixture(t, db)
	ticketTypeID := seedTicketType(t, db, eventID, 10, 0, 3000)

	repo := NewOrderRepository(db)

	cart := models.NewCart()
	cart.Items = append(cart.Items, models.CartLineItem{
		TicketTypeID: ticketTypeID,
		TicketName:   "Seeded",
		Price:        3000,
		Quantity:     1,
		EventID:      eventID,
		EventTitle:   "Integration Event",
	})

	order := testOrder(organizerID)
	order.TotalAmount = 3000

	created, err := repo.CreateFromCart(order, cart)
	if err != nil {
		t.Fatalf("CreateFromCart() error = %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM orders WHERE id = $1`, created.ID)
	})

	orders, err := repo.GetByUser(organizerID)
	if err != nil {
		t.Fatalf("GetByUser() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("GetByUser() returned %d orders, want 1", len(orders))
	}
	if orders[0].OrderNumber != order.OrderNumber {
		t.Errorf("order number = %s, want %s", orders[0].OrderNumber, order.OrderNumber)
	}
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewOrderRepository(db)
	if _, err := repo.GetByID(0); !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("GetByID(0) error = %v, want ErrOrderNotFound", err)
	}
}
