package repository

import (
	"context"

	"foodbridge/internal/model"
)

// FeedbackRepository defines data access for feedback entries.
// Search matches the message text, case-insensitive substring.
type FeedbackRepository interface {
	Store[model.Feedback]

	FindByUserID(ctx context.Context, userID int64) ([]model.Feedback, error)
	FindByStar(ctx context.Context, star int) ([]model.Feedback, error)

	// AverageStar returns the mean star rating across all feedback,
	// or 0 when the table is empty.
	AverageStar(ctx context.Context) (float64, error)
}
