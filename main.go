package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/birthdaywisher/backend/api/v1/database"
	"github.com/birthdaywisher/backend/api/v1/handlers"
	"github.com/birthdaywisher/backend/api/v1/mail"
	"github.com/birthdaywisher/backend/api/v1/scheduler"
	"github.com/birthdaywisher/backend/config"
	"github.com/birthdaywisher/backend/web"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if err := database.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	store := &database.Store{Pool: pool}

	mailer, err := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	if err != nil {
		log.Fatalf("failed to set up mail transport: %v", err)
	}

	// Daily birthday sweep, independent of API traffic
	sweeper := scheduler.New(store, mailer, cfg.SweepHour, cfg.SweepMinute)
	go sweeper.Run(ctx)
	log.Printf("Birthday sweep scheduled daily at %02d:%02d", cfg.SweepHour, cfg.SweepMinute)

	// Create handler with the record store
	userHandler := &handlers.UserHandler{Store: store}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.ApiInfoHandler)

		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.CreateUser)
			r.Get("/", userHandler.GetUsers)
			r.Get("/today", userHandler.GetTodayUsers)
			r.Get("/{id}", userHandler.GetUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})

	// Embedded form + table UI
	r.Handle("/*", web.Handler())

	log.Printf("Starting server on port %s", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	if err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
