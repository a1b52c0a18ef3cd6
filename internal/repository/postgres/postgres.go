// Package postgres holds the PostgreSQL implementations of the repository
// interfaces. They use database/sql with parameterized queries and contain
// no business logic.
package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"foodbridge/internal/repository"
)

// uniqueViolation is the SQLSTATE reported by PostgreSQL when a write hits
// a unique constraint.
const uniqueViolation = "23505"

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// translateErr maps a unique-constraint violation to *repository.DuplicateError
// carrying the offending field name. All other errors pass through unchanged.
// Unique constraints follow the naming scheme uq_<table>_<field>.
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &repository.DuplicateError{Field: fieldFromConstraint(pgErr.ConstraintName)}
	}
	return err
}

func fieldFromConstraint(name string) string {
	parts := strings.SplitN(name, "_", 3)
	if len(parts) == 3 {
		return parts[2]
	}
	return name
}
