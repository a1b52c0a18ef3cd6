package repository

import (
	"context"

	"foodbridge/internal/model"
)

// RecipientRepository defines data access for recipients.
// Search matches name or email, case-insensitive substring.
type RecipientRepository interface {
	Store[model.Recipient]
	StatusStore[model.Recipient]

	FindByUserID(ctx context.Context, userID int64) (*model.Recipient, error)
	FindByLocation(ctx context.Context, location string) ([]model.Recipient, error)
	FindByOrganization(ctx context.Context, name string) ([]model.Recipient, error)

	// SetAttachments overwrites the stored attachment paths; a nil pointer
	// leaves that field unchanged. Returns sql.ErrNoRows if the id is absent.
	SetAttachments(ctx context.Context, id int64, photo, certificate, signature *string) (*model.Recipient, error)
}
