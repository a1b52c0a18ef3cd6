package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/model"
	"foodbridge/internal/service"
)

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

func formInt64(c *fiber.Ctx, field string) int64 {
	v, _ := strconv.ParseInt(c.FormValue(field), 10, 64)
	return v
}

func formInt(c *fiber.Ctx, field string) int {
	v, _ := strconv.Atoi(c.FormValue(field))
	return v
}

func formFloat(c *fiber.Ctx, field string) float64 {
	v, _ := strconv.ParseFloat(c.FormValue(field), 64)
	return v
}

func donorFromForm(c *fiber.Ctx) *model.Donor {
	return &model.Donor{
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

// CreateDonor admits a donor profile. JSON bodies carry fields only;
// multipart bodies may additionally carry photo, certificate and signature
// files which are stored after the row is created.
func CreateDonor(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isMultipart(c) {
			var d model.Donor
			if err := c.BodyParser(&d); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
			}
			created, err := svc.Create(c.UserContext(), &d)
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

		created, err := svc.Create(c.UserContext(), donorFromForm(c))
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

// UploadDonorFiles stores any of photo, certificate and signature sent as
// multipart fields on an existing donor.
func UploadDonorFiles(svc service.DonorService) fiber.Handler {
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

		d, err := svc.AttachFiles(c.UserContext(), id, photo, certificate, signature)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// UploadDonorPhoto stores the profile photo sent as a multipart "photo" field.
func UploadDonorPhoto(svc service.DonorService) fiber.Handler {
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

		d, err := svc.AttachFiles(c.UserContext(), id, photo, nil, nil)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// DonorByUserID returns the donor profile owned by a user account.
func DonorByUserID(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "userId")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid user id format")
		}
		d, err := svc.GetByUserID(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// DonorsByLocation returns donors in the given location.
func DonorsByLocation(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, err := svc.GetByLocation(c.UserContext(), c.Params("location"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ds)
	}
}

// DonorsByOrganization returns donors belonging to the named organization.
func DonorsByOrganization(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, err := svc.GetByOrganization(c.UserContext(), c.Params("name"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ds)
	}
}

// RegisterDonorRoutes wires the donor group. GET /:id goes last so static
// paths are matched first.
func RegisterDonorRoutes(r fiber.Router, svc service.DonorService) {
	registerCRUDRoutes[model.Donor](r, svc, CreateDonor(svc))
	registerStatusRoutes[model.Donor](r, svc)
	r.Post("/:id/upload", UploadDonorFiles(svc))
	r.Post("/:id/photo", UploadDonorPhoto(svc))
	r.Get("/user/:userId", DonorByUserID(svc))
	r.Get("/location/:location", DonorsByLocation(svc))
	r.Get("/organization/:name", DonorsByOrganization(svc))
	r.Get("/:id", GetEntity[model.Donor](svc))
}
