package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/model"
	"foodbridge/internal/service"
)

// UploadDonationPhoto stores the donation photo sent as a multipart "photo"
// field.
func UploadDonationPhoto(svc service.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var files formFiles
		defer files.Close()
		photo, err := files.take(c, "photo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		if photo == nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "photo file is required")
		}

		d, err := svc.AttachPhoto(c.UserContext(), id, photo)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// DonationsByDonorID returns every donation offered by a donor.
func DonationsByDonorID(svc service.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		donorID, ok := parseID(c, "donorId")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid donor id format")
		}
		ds, err := svc.GetByDonorID(c.UserContext(), donorID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ds)
	}
}

// DonationsByLocation returns donations in the given location.
func DonationsByLocation(svc service.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, err := svc.GetByLocation(c.UserContext(), c.Params("location"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ds)
	}
}

// RegisterDonationRoutes wires the donation group.
func RegisterDonationRoutes(r fiber.Router, svc service.DonationService) {
	registerCRUDRoutes[model.Donation](r, svc, nil)
	registerStatusRoutes[model.Donation](r, svc)
	r.Post("/:id/photo", UploadDonationPhoto(svc))
	r.Get("/donor/:donorId", DonationsByDonorID(svc))
	r.Get("/location/:location", DonationsByLocation(svc))
	r.Get("/:id", GetEntity[model.Donation](svc))
}
