package handler

import (
	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/model"
	"foodbridge/internal/service"
)

func recipientFromForm(c *fiber.Ctx) *model.Recipient {
	return &model.Recipient{
		UserID:                    formInt64(c, "user_id"),
		Name:                      c.FormValue("name"),
		Age:                       formInt(c, "age"),
		Address:                   c.FormValue("address"),
		OrganizationName:          c.FormValue("organization_name"),
		OrganizationCertificateID: c.FormValue("organization_certificate_id"),
		PAN:                       c.FormValue("pan"),
		Aadhaar:                   c.FormValue("aadhaar"),
		Phone:                     c.FormValue("phone"),
		Email:                     c.FormValue("email"),
		Location:                  c.FormValue("location"),
	}
}

// CreateRecipient admits a recipient profile, accepting the same JSON and
// multipart shapes as donor creation.
func CreateRecipient(svc service.RecipientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isMultipart(c) {
			var rec model.Recipient
			if err := c.BodyParser(&rec); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
			}
			created, err := svc.Create(c.UserContext(), &rec)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(created)
		}

		// Open the files before the row is written so a malformed multipart
		// body never persists a half-complete profile.
		var files formFiles
		defer files.Close()
		photo, err := files.take(c, "photo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		certificate, err := files.take(c, "certificate")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		signature, err := files.take(c, "signature")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}

		created, err := svc.Create(c.UserContext(), recipientFromForm(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		if photo != nil || certificate != nil || signature != nil {
			created, err = svc.AttachFiles(c.UserContext(), created.ID, photo, certificate, signature)
			if err != nil {
				return writeServiceError(c, err)
			}
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UploadRecipientFiles stores any of photo, certificate and signature sent as
// multipart fields on an existing recipient.
func UploadRecipientFiles(svc service.RecipientService) fiber.Handler {
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
		certificate, err := files.take(c, "certificate")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		signature, err := files.take(c, "signature")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		if photo == nil && certificate == nil && signature == nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "at least one file is required")
		}

		rec, err := svc.AttachFiles(c.UserContext(), id, photo, certificate, signature)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// UploadRecipientPhoto stores the profile photo sent as a multipart "photo"
// field.
func UploadRecipientPhoto(svc service.RecipientService) fiber.Handler {
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

		rec, err := svc.AttachFiles(c.UserContext(), id, photo, nil, nil)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// RecipientByUserID returns the recipient profile owned by a user account.
func RecipientByUserID(svc service.RecipientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "userId")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid user id format")
		}
		rec, err := svc.GetByUserID(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// RecipientsByLocation returns recipients in the given location.
func RecipientsByLocation(svc service.RecipientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := svc.GetByLocation(c.UserContext(), c.Params("location"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(recs)
	}
}

// RecipientsByOrganization returns recipients belonging to the named
// organization.
func RecipientsByOrganization(svc service.RecipientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := svc.GetByOrganization(c.UserContext(), c.Params("name"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(recs)
	}
}

// RegisterRecipientRoutes wires the recipient group.
func RegisterRecipientRoutes(r fiber.Router, svc service.RecipientService) {
	registerCRUDRoutes[model.Recipient](r, svc, CreateRecipient(svc))
	registerStatusRoutes[model.Recipient](r, svc)
	r.Post("/:id/upload", UploadRecipientFiles(svc))
	r.Post("/:id/photo", UploadRecipientPhoto(svc))
	r.Get("/user/:userId", RecipientByUserID(svc))
	r.Get("/location/:location", RecipientsByLocation(svc))
	r.Get("/organization/:name", RecipientsByOrganization(svc))
	r.Get("/:id", GetEntity[model.Recipient](svc))
}
