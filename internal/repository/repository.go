package repository

// Package repository contains data access layer abstractions.
// Implementations can live in subpackages (e.g., postgres) inside this directory.

import "context"

// Store is the capability set shared by every entity table: keyed lookup,
// full listing, create with server-assigned id/timestamps, full-field
// replace-update, delete, existence check, row count and substring search.
//
// FindByID reports a missing row with sql.ErrNoRows; Update and Delete
// report it through their bool return instead. Uniqueness violations are
// surfaced from Create/Update as *DuplicateError; implementations rely on
// database unique constraints, never on a pre-check.
type Store[T any] interface {
	Create(ctx context.Context, e *T) (*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, e *T) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string) ([]T, error)
}

// StatusStore is implemented by stores whose entity carries a status and
// remarks pair. UpdateStatus overwrites both fields and returns the updated
// row, or sql.ErrNoRows if the id is absent. Status matching is
// case-insensitive.
type StatusStore[T any] interface {
	UpdateStatus(ctx context.Context, id int64, status, remarks string) (*T, error)
	FindByStatus(ctx context.Context, status string) ([]T, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
