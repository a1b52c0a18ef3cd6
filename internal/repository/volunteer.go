package repository

import (
	"context"

	"foodbridge/internal/model"
)

// VolunteerRepository defines data access for volunteers.
// Search matches name or email, case-insensitive substring.
type VolunteerRepository interface {
	Store[model.Volunteer]
	StatusStore[model.Volunteer]

	FindByUserID(ctx context.Context, userID int64) (*model.Volunteer, error)
	FindByLocation(ctx context.Context, location string) ([]model.Volunteer, error)

	// SetPhoto overwrites the stored profile photo path.
	// Returns sql.ErrNoRows if the id is absent.
	SetPhoto(ctx context.Context, id int64, photo string) (*model.Volunteer, error)
}
