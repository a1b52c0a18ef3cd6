package service

import "errors"

// Every entity service reports failures through the same small set of error
// kinds. Duplicate-field violations are passed through from the repository
// layer as *repository.DuplicateError.
var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("record not found")
	ErrMissingReference   = errors.New("referenced record does not exist")
	ErrEmptyFile          = errors.New("uploaded file is empty")
	ErrInvalidStatus      = errors.New("status value is not allowed for this entity")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
