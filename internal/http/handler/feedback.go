package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"foodbridge/internal/model"
	"foodbridge/internal/service"
)

// FeedbackByUserID returns every feedback entry left by a user.
func FeedbackByUserID(svc service.FeedbackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "userId")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid user id format")
		}
		fs, err := svc.GetByUserID(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fs)
	}
}

// FeedbackByStar returns every feedback entry with the given star rating.
func FeedbackByStar(svc service.FeedbackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		star, err := strconv.Atoi(c.Params("star"))
		if err != nil || star < 0 || star > 5 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_STAR", "star must be between 0 and 5")
		}
		fs, err := svc.GetByStar(c.UserContext(), star)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fs)
	}
}

// FeedbackAverage returns the mean star rating across all feedback.
func FeedbackAverage(svc service.FeedbackService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		avg, err := svc.AverageStar(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"average": avg})
	}
}

// RegisterFeedbackRoutes wires the feedback group. Feedback has no status
// workflow.
func RegisterFeedbackRoutes(r fiber.Router, svc service.FeedbackService) {
	registerCRUDRoutes[model.Feedback](r, svc, nil)
	r.Get("/user/:userId", FeedbackByUserID(svc))
	r.Get("/star/:star", FeedbackByStar(svc))
	r.Get("/average", FeedbackAverage(svc))
	r.Get("/:id", GetEntity[model.Feedback](svc))
}
