package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"tickethub/internal/config"
	"tickethub/internal/database"
	"tickethub/internal/handlers"
	"tickethub/internal/middleware"
	"tickethub/internal/repositories"
	"tickethub/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

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
	log.Println("Database connection established successfully")

	if err := db.Migrate(logger); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)
	giftCardRepo := repositories.NewGiftCardRepository(db.DB)
	resaleRepo := repositories.NewResaleRepository(db.DB)

	// Initialize services
	authService := services.NewAuthService(cfg.Auth.BaseURL, cfg.Auth.APIKey, userRepo)
	eventService := services.NewEventService(eventRepo, ticketRepo)
	ticketService := services.NewTicketService(ticketRepo, eventService)
	giftCardService := services.NewGiftCardService(giftCardRepo)
	orderService := services.NewOrderService(orderRepo, giftCardService)
	resaleService := services.NewResaleService(resaleRepo, ticketRepo)

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(eventService)
	cartHandler := handlers.NewCartHandler(ticketService, eventService, orderService, ticketRepo, sessionStore)
	ticketTypeHandler := handlers.NewTicketTypeHandler(ticketService, eventService)
	dashboardHandler := handlers.NewDashboardHandler(eventService, orderService)
	giftCardHandler := handlers.NewGiftCardHandler(giftCardService)
	resaleHandler := handlers.NewResaleHandler(resaleService)
	authHandler := handlers.NewAuthHandler(authService, sessionStore, logger)

	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)

	// Initialize router
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(authMiddleware.LoadUser)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/events", publicHandler.ListEvents)
		r.Get("/events/{id}", publicHandler.GetEvent)
		r.Get("/events/{id}/resale", resaleHandler.ListByEvent)
		r.Get("/categories", publicHandler.ListCategories)

		// Auth boundary
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.SignUp)
			r.Post("/signin", authHandler.SignIn)
			r.Post("/signout", authHandler.SignOut)
			r.Post("/reset-password", authHandler.ResetPassword)
			r.Get("/oauth", authHandler.OAuth)
			r.Get("/me", authHandler.Me)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/update-password", authHandler.UpdatePassword)
			})
		})

		// Shopping cart routes: the cart lives in the session, so anonymous
		// visitors can build one; only checkout requires sign in
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.ViewCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{ticketTypeID}", cartHandler.UpdateItem)
			r.Delete("/items/{ticketTypeID}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/checkout", cartHandler.Checkout)

			r.Get("/orders", dashboardHandler.ListOrders)
			r.Get("/orders/{id}", dashboardHandler.GetOrder)

			r.Post("/giftcards", giftCardHandler.Purchase)
			r.Get("/giftcards/{code}", giftCardHandler.Lookup)

			r.Post("/resale", resaleHandler.Create)
			r.Delete("/resale/{listingID}", resaleHandler.Withdraw)
		})

		// Organizer routes
		r.Route("/organizer", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireOrganizer)

			r.Get("/dashboard", dashboardHandler.GetDashboard)
			r.Get("/events/{eventID}/ticket-types", ticketTypeHandler.ListTicketTypes)
			r.Post("/events/{eventID}/ticket-types", ticketTypeHandler.CreateTicketType)
			r.Put("/ticket-types/{id}", ticketTypeHandler.UpdateTicketType)
			r.Delete("/ticket-types/{id}", ticketTypeHandler.DeleteTicketType)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"tickethub"}`))
	})

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", serverAddr)
	log.Fatal(http.ListenAndServe(serverAddr, r))
}
