package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/model"
	"foodbridge/internal/service"
)

// UploadVolunteerPhoto stores the profile photo sent as a multipart "photo"
// field.
func UploadVolunteerPhoto(svc service.VolunteerService) fiber.Handler {
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

		v, err := svc.AttachPhoto(c.UserContext(), id, photo)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// VolunteerByUserID returns the volunteer profile owned by a user account.
func VolunteerByUserID(svc service.VolunteerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "userId")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid user id format")
		}
		v, err := svc.GetByUserID(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// VolunteersByLocation returns volunteers in the given location.
func VolunteersByLocation(svc service.VolunteerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vs, err := svc.GetByLocation(c.UserContext(), c.Params("location"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(vs)
	}
}

// RegisterVolunteerRoutes wires the volunteer group.
func RegisterVolunteerRoutes(r fiber.Router, svc service.VolunteerService) {
	registerCRUDRoutes[model.Volunteer](r, svc, nil)
	registerStatusRoutes[model.Volunteer](r, svc)
	r.Post("/:id/photo", UploadVolunteerPhoto(svc))
	r.Get("/user/:userId", VolunteerByUserID(svc))
	r.Get("/location/:location", VolunteersByLocation(svc))
	r.Get("/:id", GetEntity[model.Volunteer](svc))
}
