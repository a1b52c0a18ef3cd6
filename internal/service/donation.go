package service

import (
	"context"
	"database/sql"
	"errors"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// DonationService defines the use cases for handling donations.
type DonationService interface {
	CRUD[model.Donation]
	StatusWorkflow[model.Donation]

	GetByDonorID(ctx context.Context, donorID int64) ([]model.Donation, error)
	GetByLocation(ctx context.Context, location string) ([]model.Donation, error)
	AttachPhoto(ctx context.Context, id int64, photo *Upload) (*model.Donation, error)
}

type donationService struct {
	crudService[model.Donation]
	statusService[model.Donation]
	repo   repository.DonationRepository
	donors ReferenceChecker
	attach *Attacher
}

// NewDonationService constructs a new DonationService.
func NewDonationService(repo repository.DonationRepository, donors ReferenceChecker, attach *Attacher) DonationService {
	return &donationService{
		crudService:   crudService[model.Donation]{repo: repo},
		statusService: statusService[model.Donation]{statusRepo: repo, allowed: fulfillmentStatuses},
		repo:          repo,
		donors:        donors,
		attach:        attach,
	}
}

func (s *donationService) Create(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	if d.DonorID > 0 {
		ok, err := s.donors.Exists(ctx, d.DonorID)
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

func (s *donationService) GetByDonorID(ctx context.Context, donorID int64) ([]model.Donation, error) {
	return s.repo.FindByDonorID(ctx, donorID)
}

func (s *donationService) GetByLocation(ctx context.Context, location string) ([]model.Donation, error) {
	return s.repo.FindByLocation(ctx, location)
}

func (s *donationService) AttachPhoto(ctx context.Context, id int64, photo *Upload) (*model.Donation, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner := d.DonorID
	if owner == 0 {
		owner = d.ID
	}
	p, err := s.attach.Attach(ctx, "donations", owner, photo, "photo")
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
