package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/model"
	"foodbridge/internal/service"
)

// UploadRequestPhoto stores the request photo sent as a multipart "photo"
// field.
func UploadRequestPhoto(svc service.RequestService) fiber.Handler {
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

		req, err := svc.AttachPhoto(c.UserContext(), id, photo)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(req)
	}
}

// RequestsByRecipientID returns every request created by a recipient.
func RequestsByRecipientID(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipientID, ok := parseID(c, "recipientId")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid recipient id format")
		}
		reqs, err := svc.GetByRecipientID(c.UserContext(), recipientID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(reqs)
	}
}

// RequestsByLocation returns requests in the given location.
func RequestsByLocation(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := svc.GetByLocation(c.UserContext(), c.Params("location"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(reqs)
	}
}

// RegisterRequestRoutes wires the request group.
func RegisterRequestRoutes(r fiber.Router, svc service.RequestService) {
	registerCRUDRoutes[model.Request](r, svc, nil)
	registerStatusRoutes[model.Request](r, svc)
	r.Post("/:id/photo", UploadRequestPhoto(svc))
	r.Get("/recipient/:recipientId", RequestsByRecipientID(svc))
	r.Get("/location/:location", RequestsByLocation(svc))
	r.Get("/:id", GetEntity[model.Request](svc))
}
