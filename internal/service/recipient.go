package service

import (
	"context"
	"database/sql"
	"errors"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// RecipientService defines the use cases for handling recipient profiles.
type RecipientService interface {
	CRUD[model.Recipient]
	StatusWorkflow[model.Recipient]

	GetByUserID(ctx context.Context, userID int64) (*model.Recipient, error)
	GetByLocation(ctx context.Context, location string) ([]model.Recipient, error)
	GetByOrganization(ctx context.Context, name string) ([]model.Recipient, error)
	AttachFiles(ctx context.Context, id int64, photo, certificate, signature *Upload) (*model.Recipient, error)
}

type recipientService struct {
	crudService[model.Recipient]
	statusService[model.Recipient]
	repo   repository.RecipientRepository
	users  ReferenceChecker
	attach *Attacher
}

// NewRecipientService constructs a new RecipientService.
func NewRecipientService(repo repository.RecipientRepository, users ReferenceChecker, attach *Attacher) RecipientService {
	return &recipientService{
		crudService:   crudService[model.Recipient]{repo: repo},
		statusService: statusService[model.Recipient]{statusRepo: repo, allowed: verificationStatuses},
		repo:          repo,
		users:         users,
		attach:        attach,
	}
}

func (s *recipientService) Create(ctx context.Context, rec *model.Recipient) (*model.Recipient, error) {
	if rec.UserID > 0 {
		ok, err := s.users.Exists(ctx, rec.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrMissingReference
		}
	}
	rec.Status = StatusPending
	rec.Remarks = ""
	return s.repo.Create(ctx, rec)
}

func (s *recipientService) GetByUserID(ctx context.Context, userID int64) (*model.Recipient, error) {
	rec, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recipientService) GetByLocation(ctx context.Context, location string) ([]model.Recipient, error) {
	return s.repo.FindByLocation(ctx, location)
}

func (s *recipientService) GetByOrganization(ctx context.Context, name string) ([]model.Recipient, error) {
	return s.repo.FindByOrganization(ctx, name)
}

func (s *recipientService) AttachFiles(ctx context.Context, id int64, photo, certificate, signature *Upload) (*model.Recipient, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := rec.UserID
	if owner == 0 {
		owner = rec.ID
	}

	kinds := []struct {
		up    *Upload
		label string
		apply func(p *string) (*model.Recipient, error)
	}{
		{photo, "photo", func(p *string) (*model.Recipient, error) { return s.repo.SetAttachments(ctx, id, p, nil, nil) }},
		{certificate, "certificate", func(p *string) (*model.Recipient, error) { return s.repo.SetAttachments(ctx, id, nil, p, nil) }},
		{signature, "signature", func(p *string) (*model.Recipient, error) { return s.repo.SetAttachments(ctx, id, nil, nil, p) }},
	}
	for _, k := range kinds {
		if k.up == nil {
			continue
		}
		p, err := s.attach.Attach(ctx, "recipients", owner, k.up, k.label)
		if err != nil {
			return nil, err
		}
		if rec, err = k.apply(&p); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	return rec, nil
}
