package service

import (
	"context"
	"database/sql"
	"errors"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// RequestService defines the use cases for handling aid requests.
type RequestService interface {
	CRUD[model.Request]
	StatusWorkflow[model.Request]

	GetByRecipientID(ctx context.Context, recipientID int64) ([]model.Request, error)
	GetByLocation(ctx context.Context, location string) ([]model.Request, error)
	AttachPhoto(ctx context.Context, id int64, photo *Upload) (*model.Request, error)
}

type requestService struct {
	crudService[model.Request]
	statusService[model.Request]
	repo       repository.RequestRepository
	recipients ReferenceChecker
	attach     *Attacher
}

// NewRequestService constructs a new RequestService.
func NewRequestService(repo repository.RequestRepository, recipients ReferenceChecker, attach *Attacher) RequestService {
	return &requestService{
		crudService:   crudService[model.Request]{repo: repo},
		statusService: statusService[model.Request]{statusRepo: repo, allowed: fulfillmentStatuses},
		repo:          repo,
		recipients:    recipients,
		attach:        attach,
	}
}

// Create admits a new request. The referenced recipient must exist; the
// check runs before anything is written so a rejected create persists no row.
func (s *requestService) Create(ctx context.Context, req *model.Request) (*model.Request, error) {
	ok, err := s.recipients.Exists(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingReference
	}
	req.Status = StatusPending
	req.Remarks = ""
	return s.repo.Create(ctx, req)
}

func (s *requestService) GetByRecipientID(ctx context.Context, recipientID int64) ([]model.Request, error) {
	return s.repo.FindByRecipientID(ctx, recipientID)
}

func (s *requestService) GetByLocation(ctx context.Context, location string) ([]model.Request, error) {
	return s.repo.FindByLocation(ctx, location)
}

func (s *requestService) AttachPhoto(ctx context.Context, id int64, photo *Upload) (*model.Request, error) {
	req, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.attach.Attach(ctx, "requests", req.RecipientID, photo, "photo")
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
