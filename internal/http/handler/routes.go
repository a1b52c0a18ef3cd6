package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/service"
)

// Services bundles every use-case service the HTTP layer exposes.
type Services struct {
	Users      service.UserService
	Donors     service.DonorService
	Recipients service.RecipientService
	Volunteers service.VolunteerService
	Requests   service.RequestService
	Donations  service.DonationService
	Feedback   service.FeedbackService
	Admin      service.AdminService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Health endpoint checks DB connectivity; healthz is liveness only
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	RegisterDonorRoutes(api.Group("/donor"), svcs.Donors)
	RegisterRecipientRoutes(api.Group("/recipient"), svcs.Recipients)
	RegisterVolunteerRoutes(api.Group("/volunteer"), svcs.Volunteers)
	RegisterRequestRoutes(api.Group("/request"), svcs.Requests)
	RegisterDonationRoutes(api.Group("/donation"), svcs.Donations)
	RegisterFeedbackRoutes(api.Group("/feedback"), svcs.Feedback)
	RegisterAuthRoutes(api.Group("/auth/user"), svcs.Users)
	RegisterAdminRoutes(api.Group("/admin"), AdminServices{
		Admin:      svcs.Admin,
		Donors:     svcs.Donors,
		Recipients: svcs.Recipients,
		Volunteers: svcs.Volunteers,
		Requests:   svcs.Requests,
		Donations:  svcs.Donations,
	})
}
