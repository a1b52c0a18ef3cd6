package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"foodbridge/internal/config"
	"foodbridge/internal/database"
	"foodbridge/internal/database/migration"
	handlers "foodbridge/internal/http/handler"
	"foodbridge/internal/http/middleware"
	"foodbridge/internal/otel"
	"foodbridge/internal/repository/postgres"
	"foodbridge/internal/service"
	"foodbridge/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	// Initialize OpenTelemetry tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create schema on first run
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Attachment storage: local disk by default, MinIO when configured
	var store storage.Storage
	switch cfg.Storage.Backend {
	case "minio":
		store, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	default:
		store, err = storage.NewLocal(cfg.Storage.LocalRoot)
		if err != nil {
			log.Fatalf("failed to initialize local storage: %v", err)
		}
	}
	attach := service.NewAttacher(store)

	// Repositories
	userRepo := postgres.NewUserPostgres(db)
	donorRepo := postgres.NewDonorPostgres(db)
	recipientRepo := postgres.NewRecipientPostgres(db)
	volunteerRepo := postgres.NewVolunteerPostgres(db)
	requestRepo := postgres.NewRequestPostgres(db)
	donationRepo := postgres.NewDonationPostgres(db)
	feedbackRepo := postgres.NewFeedbackPostgres(db)

	// Services. Cross-references are validated against the owning repository.
	userSvc := service.NewUserService(userRepo)
	donorSvc := service.NewDonorService(donorRepo, userRepo, attach)
	recipientSvc := service.NewRecipientService(recipientRepo, userRepo, attach)
	volunteerSvc := service.NewVolunteerService(volunteerRepo, userRepo, attach)
	requestSvc := service.NewRequestService(requestRepo, recipientRepo, attach)
	donationSvc := service.NewDonationService(donationRepo, donorRepo, attach)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, userRepo)
	adminSvc := service.NewAdminService(donorSvc, recipientSvc, volunteerSvc, requestSvc, donationSvc)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	// Request metrics and the /metrics scrape endpoint
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, handlers.Services{
		Users:      userSvc,
		Donors:     donorSvc,
		Recipients: recipientSvc,
		Volunteers: volunteerSvc,
		Requests:   requestSvc,
		Donations:  donationSvc,
		Feedback:   feedbackSvc,
		Admin:      adminSvc,
	})

	// Attachments written to local disk are served back at their stored paths
	if cfg.Storage.Backend != "minio" {
		app.Static("/uploads", cfg.Storage.LocalRoot+"/uploads")
	}

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
