package repository

import "fmt"

// DuplicateError reports a unique-constraint violation on a single field.
// It is produced by store implementations when the database rejects a write,
// so the check and the write are one atomic operation.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}
