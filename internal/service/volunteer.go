package service

import (
	"context"
	"database/sql"
	"errors"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// VolunteerService defines the use cases for handling volunteer profiles.
type VolunteerService interface {
	CRUD[model.Volunteer]
	StatusWorkflow[model.Volunteer]

	GetByUserID(ctx context.Context, userID int64) (*model.Volunteer, error)
	GetByLocation(ctx context.Context, location string) ([]model.Volunteer, error)

	// AttachPhoto stores the uploaded profile photo and records its path.
	AttachPhoto(ctx context.Context, id int64, photo *Upload) (*model.Volunteer, error)
}

type volunteerService struct {
	crudService[model.Volunteer]
	statusService[model.Volunteer]
	repo   repository.VolunteerRepository
	users  ReferenceChecker
	attach *Attacher
}

// NewVolunteerService constructs a new VolunteerService.
func NewVolunteerService(repo repository.VolunteerRepository, users ReferenceChecker, attach *Attacher) VolunteerService {
	return &volunteerService{
		crudService:   crudService[model.Volunteer]{repo: repo},
		statusService: statusService[model.Volunteer]{statusRepo: repo, allowed: verificationStatuses},
		repo:          repo,
		users:         users,
		attach:        attach,
	}
}

func (s *volunteerService) Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	if v.UserID > 0 {
		ok, err := s.users.Exists(ctx, v.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrMissingReference
		}
	}
	v.Status = StatusPending
	v.Remarks = ""
	return s.repo.Create(ctx, v)
}

func (s *volunteerService) GetByUserID(ctx context.Context, userID int64) (*model.Volunteer, error) {
	v, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *volunteerService) GetByLocation(ctx context.Context, location string) ([]model.Volunteer, error) {
	return s.repo.FindByLocation(ctx, location)
}

func (s *volunteerService) AttachPhoto(ctx context.Context, id int64, photo *Upload) (*model.Volunteer, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := v.UserID
	if owner == 0 {
		owner = v.ID
	}
	p, err := s.attach.Attach(ctx, "volunteers", owner, photo, "photo")
	if err != nil {
		return nil, err
	}
	out, err := s.repo.SetPhoto(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
