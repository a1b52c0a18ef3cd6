package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/service"
)

// parseID reads a positive int64 route parameter.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// The handlers below are shared by every entity group. Each is instantiated
// per entity with its concrete model type and service.

// CreateEntity decodes a JSON body and admits a new record.
func CreateEntity[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e T
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		created, err := svc.Create(c.UserContext(), &e)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// GetEntity returns one record by id.
func GetEntity[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		e, err := svc.GetByID(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// ListEntities returns every record.
func ListEntities[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		es, err := svc.GetAll(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(es)
	}
}

// UpdateEntity replaces the mutable fields of a record and returns the stored
// result.
func UpdateEntity[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var e T
		if err := c.BodyParser(&e); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if err := svc.UpdateByID(c.UserContext(), id, &e); err != nil {
			return writeServiceError(c, err)
		}
		updated, err := svc.GetByID(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteEntity removes a record by id.
func DeleteEntity[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SearchEntities returns records matching the query parameter across the
// entity's text fields.
func SearchEntities[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("query")
		if q == "" {
			return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", "query parameter is required")
		}
		es, err := svc.Search(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(es)
	}
}

// CountEntities returns the total record count.
func CountEntities[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Count(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"count": n})
	}
}

// EntityExists reports whether a record with the given id exists.
func EntityExists[T any](svc service.CRUD[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		exists, err := svc.Exists(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"exists": exists})
	}
}

// statusRequest is the optional JSON body for status updates; query
// parameters take precedence over it.
type statusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// UpdateEntityStatus sets status and remarks on a record. Status and remarks
// come from query parameters or a JSON body.
func UpdateEntityStatus[T any](svc service.StatusWorkflow[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		req := statusRequest{
			Status:  c.Query("status"),
			Remarks: c.Query("remarks"),
		}
		if req.Status == "" && len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
			}
		}
		e, err := svc.UpdateStatus(c.UserContext(), id, req.Status, req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// EntitiesByStatus returns every record currently in the given status.
func EntitiesByStatus[T any](svc service.StatusWorkflow[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		es, err := svc.GetByStatus(c.UserContext(), c.Params("status"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(es)
	}
}

// CountEntitiesByStatus returns the number of records in the given status.
func CountEntitiesByStatus[T any](svc service.StatusWorkflow[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.CountByStatus(c.UserContext(), c.Params("status"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"count": n})
	}
}

// registerCRUDRoutes wires the routes every entity group shares. The catch-all
// GET /:id is left to the caller so entity-specific static routes can be
// registered before it.
func registerCRUDRoutes[T any](r fiber.Router, svc service.CRUD[T], create fiber.Handler) {
	if create == nil {
		create = CreateEntity(svc)
	}
	r.Post("/add", create)
	r.Get("/all", ListEntities(svc))
	r.Get("/search", SearchEntities(svc))
	r.Get("/count", CountEntities(svc))
	r.Get("/exists/:id", EntityExists(svc))
	r.Put("/update/:id", UpdateEntity(svc))
	r.Delete("/delete/:id", DeleteEntity(svc))
}

// registerStatusRoutes wires the status workflow routes for entities that
// carry a status/remarks pair.
func registerStatusRoutes[T any](r fiber.Router, svc service.StatusWorkflow[T]) {
	r.Patch("/:id/status", UpdateEntityStatus(svc))
	r.Get("/status/:status", EntitiesByStatus(svc))
	r.Get("/count/:status", CountEntitiesByStatus(svc))
}
