package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/model"
	"foodbridge/internal/service"
)

// AdminServices bundles the entity services the admin surface moderates.
type AdminServices struct {
	Admin      service.AdminService
	Donors     service.DonorService
	Recipients service.RecipientService
	Volunteers service.VolunteerService
	Requests   service.RequestService
	Donations  service.DonationService
}

// AdminStats returns the cross-entity dashboard totals.
func AdminStats(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// RegisterAdminRoutes wires the admin group: the stats aggregate, per-entity
// listings and status moderation passthroughs.
func RegisterAdminRoutes(r fiber.Router, svcs AdminServices) {
	r.Get("/stats", AdminStats(svcs.Admin))

	r.Get("/donors", ListEntities[model.Donor](svcs.Donors))
	r.Get("/recipients", ListEntities[model.Recipient](svcs.Recipients))
	r.Get("/volunteers", ListEntities[model.Volunteer](svcs.Volunteers))
	r.Get("/requests", ListEntities[model.Request](svcs.Requests))
	r.Get("/donations", ListEntities[model.Donation](svcs.Donations))

	r.Put("/donors/:id/status", UpdateEntityStatus[model.Donor](svcs.Donors))
	r.Put("/recipients/:id/status", UpdateEntityStatus[model.Recipient](svcs.Recipients))
	r.Put("/volunteers/:id/status", UpdateEntityStatus[model.Volunteer](svcs.Volunteers))
	r.Put("/requests/:id/status", UpdateEntityStatus[model.Request](svcs.Requests))
	r.Put("/donations/:id/status", UpdateEntityStatus[model.Donation](svcs.Donations))
}
