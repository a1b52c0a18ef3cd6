package repository

import (
	"context"

	"foodbridge/internal/model"
)

// DonorRepository defines data access for donors using SQL queries only.
// No business logic here; strictly persistence operations.
// Search matches name or email, case-insensitive substring.
type DonorRepository interface {
	Store[model.Donor]
	StatusStore[model.Donor]

	// FindByUserID returns the donor profile owned by the given user account.
	FindByUserID(ctx context.Context, userID int64) (*model.Donor, error)

	// FindByLocation returns donors whose location contains the given
	// substring, case-insensitive.
	FindByLocation(ctx context.Context, location string) ([]model.Donor, error)

	// FindByOrganization returns donors whose organization name contains the
	// given substring, case-insensitive.
	FindByOrganization(ctx context.Context, name string) ([]model.Donor, error)

	// SetAttachments overwrites the stored attachment paths; a nil pointer
	// leaves that field unchanged. Returns sql.ErrNoRows if the id is absent.
	SetAttachments(ctx context.Context, id int64, photo, certificate, signature *string) (*model.Donor, error)
}
