package repository

import (
	"context"

	"foodbridge/internal/model"
)

// RequestRepository defines data access for aid requests.
// Search matches title or description, case-insensitive substring.
type RequestRepository interface {
	Store[model.Request]
	StatusStore[model.Request]

	FindByRecipientID(ctx context.Context, recipientID int64) ([]model.Request, error)
	FindByLocation(ctx context.Context, location string) ([]model.Request, error)

	// SetPhoto overwrites the stored photo path.
	// Returns sql.ErrNoRows if the id is absent.
	SetPhoto(ctx context.Context, id int64, photo string) (*model.Request, error)
}
