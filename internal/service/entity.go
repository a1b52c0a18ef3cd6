package service

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"

	"foodbridge/internal/repository"
)

// Entity status values. Verification entities (Donor, Recipient, Volunteer)
// move between pending/verified/rejected; fulfillment entities (Request,
// Donation) between pending/approved/rejected/completed. No transition order
// is enforced: any allowed status may follow any other.
const (
	StatusPending   = "pending"
	StatusVerified  = "verified"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

var (
	verificationStatuses = []string{StatusPending, StatusVerified, StatusRejected}
	fulfillmentStatuses  = []string{StatusPending, StatusApproved, StatusRejected, StatusCompleted}
)

// CRUD is the use-case surface shared by every entity service.
type CRUD[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, e *T) (*T, error)
	UpdateByID(ctx context.Context, id int64, e *T) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]T, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// StatusWorkflow is the status-transition surface for entities that carry a
// status/remarks pair.
type StatusWorkflow[T any] interface {
	UpdateStatus(ctx context.Context, id int64, status, remarks string) (*T, error)
	GetByStatus(ctx context.Context, status string) ([]T, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// ReferenceChecker reports whether a row with the given id exists. It is the
// narrow dependency entity services use to validate cross-references before
// a create is admitted.
type ReferenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// crudService implements CRUD over a repository store. Concrete entity
// services embed it and override Create where reference validation or
// default status assignment is needed.
type crudService[T any] struct {
	repo repository.Store[T]
}

func (s *crudService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *crudService[T]) GetAll(ctx context.Context) ([]T, error) {
	return s.repo.FindAll(ctx)
}

func (s *crudService[T]) Create(ctx context.Context, e *T) (*T, error) {
	return s.repo.Create(ctx, e)
}

func (s *crudService[T]) UpdateByID(ctx context.Context, id int64, e *T) error {
	if id <= 0 {
		return ErrIDRequired
	}
	ok, err := s.repo.Update(ctx, id, e)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *crudService[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *crudService[T]) Search(ctx context.Context, query string) ([]T, error) {
	return s.repo.Search(ctx, query)
}

func (s *crudService[T]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *crudService[T]) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// statusService implements StatusWorkflow over a repository status store.
// UpdateStatus rejects values outside the entity's allowed set but places no
// restriction on which status may follow which.
type statusService[T any] struct {
	statusRepo repository.StatusStore[T]
	allowed    []string
}

func (s *statusService[T]) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*T, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	st := strings.ToLower(strings.TrimSpace(status))
	if !slices.Contains(s.allowed, st) {
		return nil, ErrInvalidStatus
	}
	e, err := s.statusRepo.UpdateStatus(ctx, id, st, remarks)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *statusService[T]) GetByStatus(ctx context.Context, status string) ([]T, error) {
	return s.statusRepo.FindByStatus(ctx, status)
}

func (s *statusService[T]) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.statusRepo.CountByStatus(ctx, status)
}
