package repository

import (
	"context"

	"foodbridge/internal/model"
)

// DonationRepository defines data access for donations.
// Search matches title or description, case-insensitive substring.
type DonationRepository interface {
	Store[model.Donation]
	StatusStore[model.Donation]

	FindByDonorID(ctx context.Context, donorID int64) ([]model.Donation, error)
	FindByLocation(ctx context.Context, location string) ([]model.Donation, error)

	// SetPhoto overwrites the stored photo path.
	// Returns sql.ErrNoRows if the id is absent.
	SetPhoto(ctx context.Context, id int64, photo string) (*model.Donation, error)
}
