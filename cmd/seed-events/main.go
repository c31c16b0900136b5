package main

import (
	"fmt"
	"log"
	"time"

	"tickethub/internal/config"
	"tickethub/internal/database"
	"tickethub/internal/models"
	"tickethub/internal/repositories"
)

// Development seed data: an organizer account, the category set, and a few
// upcoming events with ticket types at different price points.
func main() {
	fmt.Println("Seeding demo events...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.Open(cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(log.Default()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)

	organizer, err := userRepo.UpsertByEmail("organizer@tickethub.dev", "Demo Organizer", models.RoleOrganizer)
	if err != nil {
		log.Fatal("Failed to create organizer:", err)
	}
	fmt.Printf("Organizer ready: %s (ID %d)\n", organizer.Email, organizer.ID)

	categories := []struct {
		name string
		slug string
	}{
		{"Music", "music"},
		{"Technology", "technology"},
		{"Sports", "sports"},
		{"Arts & Theatre", "arts-theatre"},
		{"Food & Drink", "food-drink"},
	}

	categoryIDs := make(map[string]int)
	for _, c := range categories {
		var id int
		err := db.QueryRow(`
			INSERT INTO categories (name, slug)
			VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			c.name, c.slug,
		).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to seed category %s: %v", c.slug, err)
		}
		categoryIDs[c.slug] = id
	}
	fmt.Printf("Seeded %d categories\n", len(categories))

	now := time.Now()

	events := []struct {
		event   models.Event
		tickets []models.TicketTypeCreateRequest
	}{
		{
			event: models.Event{
				Title:       "Summer Sound Festival",
				Description: "Two stages, twelve bands, one long evening by the waterfront.",
				StartDate:   now.AddDate(0, 1, 0),
				EndDate:     now.AddDate(0, 1, 0).Add(8 * time.Hour),
				Location:    "Riverside Park",
				CategoryID:  categoryIDs["music"],
				OrganizerID: organizer.ID,
				Status:      models.StatusPublished,
			},
			tickets: []models.TicketTypeCreateRequest{
				{Name: "General Admission", Description: "Standing access to both stages", Price: 4500, QuantityTotal: 500},
				{Name: "VIP", Description: "Front section and lounge access", Price: 12000, QuantityTotal: 50},
			},
		},
		{
			event: models.Event{
				Title:       "CloudNative Meetup",
				Description: "Talks on schedulers, service meshes, and production war stories.",
				StartDate:   now.AddDate(0, 0, 14),
				EndDate:     now.AddDate(0, 0, 14).Add(3 * time.Hour),
				Location:    "Hub Conference Center",
				CategoryID:  categoryIDs["technology"],
				OrganizerID: organizer.ID,
				Status:      models.StatusPublished,
			},
			tickets: []models.TicketTypeCreateRequest{
				{Name: "Standard", Description: "Full access including the after-session social", Price: 1500, QuantityTotal: 120},
			},
		},
		{
			event: models.Event{
				Title:       "City Marathon Expo",
				Description: "Race-week expo with gear vendors and training clinics.",
				StartDate:   now.AddDate(0, 2, 0),
				EndDate:     now.AddDate(0, 2, 2),
				Location:    "Exhibition Hall B",
				CategoryID:  categoryIDs["sports"],
				OrganizerID: organizer.ID,
				Status:      models.StatusPublished,
			},
			tickets: []models.TicketTypeCreateRequest{
				{Name: "Day Pass", Description: "Single-day expo entry", Price: 1000, QuantityTotal: 300},
				{Name: "Weekend Pass", Description: "All three expo days", Price: 2500, QuantityTotal: 150},
			},
		},
	}

	for _, seed := range events {
		created, err := eventRepo.Create(&seed.event)
		if err != nil {
			log.Fatalf("Failed to seed event %q: %v", seed.event.Title, err)
		}

		for _, tt := range seed.tickets {
			tt.EventID = created.ID
			if _, err := ticketRepo.CreateTicketType(&tt); err != nil {
				log.Fatalf("Failed to seed ticket type %q: %v", tt.Name, err)
			}
		}

		fmt.Printf("Seeded event: %s (%d ticket types)\n", created.Title, len(seed.tickets))
	}

	fmt.Println("Done.")
}
