package service

import (
	"context"
	"database/sql"
	"errors"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// DonorService defines the use cases for handling donor profiles.
type DonorService interface {
	CRUD[model.Donor]
	StatusWorkflow[model.Donor]

	// GetByUserID returns the donor profile owned by the given user account.
	GetByUserID(ctx context.Context, userID int64) (*model.Donor, error)
	GetByLocation(ctx context.Context, location string) ([]model.Donor, error)
	GetByOrganization(ctx context.Context, name string) ([]model.Donor, error)

	// AttachFiles stores any non-nil uploads and records their paths on the
	// donor. Each attachment kind is stored independently: a failure midway
	// leaves the ones already stored in place.
	AttachFiles(ctx context.Context, id int64, photo, certificate, signature *Upload) (*model.Donor, error)
}

type donorService struct {
	crudService[model.Donor]
	statusService[model.Donor]
	repo   repository.DonorRepository
	users  ReferenceChecker
	attach *Attacher
}

// NewDonorService constructs a new DonorService.
func NewDonorService(repo repository.DonorRepository, users ReferenceChecker, attach *Attacher) DonorService {
	return &donorService{
		crudService:   crudService[model.Donor]{repo: repo},
		statusService: statusService[model.Donor]{statusRepo: repo, allowed: verificationStatuses},
		repo:          repo,
		users:         users,
		attach:        attach,
	}
}

// Create admits a new donor. The owning user account must exist when set,
// and the row always starts in pending status with no remarks. Uniqueness of
// email/phone/aadhaar/pan is enforced by the store at write time.
func (s *donorService) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	if d.UserID > 0 {
		ok, err := s.users.Exists(ctx, d.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrMissingReference
		}
	}
	d.Status = StatusPending
	d.Remarks = ""
	return s.repo.Create(ctx, d)
}

func (s *donorService) GetByUserID(ctx context.Context, userID int64) (*model.Donor, error) {
	d, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *donorService) GetByLocation(ctx context.Context, location string) ([]model.Donor, error) {
	return s.repo.FindByLocation(ctx, location)
}

func (s *donorService) GetByOrganization(ctx context.Context, name string) ([]model.Donor, error) {
	return s.repo.FindByOrganization(ctx, name)
}

func (s *donorService) AttachFiles(ctx context.Context, id int64, photo, certificate, signature *Upload) (*model.Donor, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Attachment folders are keyed by the owning user account when one exists.
	owner := d.UserID
	if owner == 0 {
		owner = d.ID
	}

	kinds := []struct {
		up    *Upload
		label string
		apply func(p *string) (*model.Donor, error)
	}{
		{photo, "photo", func(p *string) (*model.Donor, error) { return s.repo.SetAttachments(ctx, id, p, nil, nil) }},
		{certificate, "certificate", func(p *string) (*model.Donor, error) { return s.repo.SetAttachments(ctx, id, nil, p, nil) }},
		{signature, "signature", func(p *string) (*model.Donor, error) { return s.repo.SetAttachments(ctx, id, nil, nil, p) }},
	}
	for _, k := range kinds {
		if k.up == nil {
			continue
		}
		p, err := s.attach.Attach(ctx, "donors", owner, k.up, k.label)
		if err != nil {
			return nil, err
		}
		if d, err = k.apply(&p); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	return d, nil
}
