package repository

import (
	"context"

	"foodbridge/internal/model"
)

// UserRepository defines data access for user accounts.
// Search matches username or email, case-insensitive substring.
type UserRepository interface {
	Store[model.User]

	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// SetPassword overwrites the stored password hash.
	// Returns false if the id is absent.
	SetPassword(ctx context.Context, id int64, hash string) (bool, error)
}
