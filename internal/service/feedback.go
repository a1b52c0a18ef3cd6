package service

import (
	"context"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// FeedbackService defines the use cases for handling feedback entries.
// Feedback carries no status workflow.
type FeedbackService interface {
	CRUD[model.Feedback]

	GetByUserID(ctx context.Context, userID int64) ([]model.Feedback, error)
	GetByStar(ctx context.Context, star int) ([]model.Feedback, error)
	AverageStar(ctx context.Context) (float64, error)
}

type feedbackService struct {
	crudService[model.Feedback]
	repo  repository.FeedbackRepository
	users ReferenceChecker
}

// NewFeedbackService constructs a new FeedbackService.
func NewFeedbackService(repo repository.FeedbackRepository, users ReferenceChecker) FeedbackService {
	return &feedbackService{
		crudService: crudService[model.Feedback]{repo: repo},
		repo:        repo,
		users:       users,
	}
}

func (s *feedbackService) Create(ctx context.Context, f *model.Feedback) (*model.Feedback, error) {
	if f.UserID > 0 {
		ok, err := s.users.Exists(ctx, f.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrMissingReference
		}
	}
	return s.repo.Create(ctx, f)
}

func (s *feedbackService) GetByUserID(ctx context.Context, userID int64) ([]model.Feedback, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *feedbackService) GetByStar(ctx context.Context, star int) ([]model.Feedback, error) {
	return s.repo.FindByStar(ctx, star)
}

func (s *feedbackService) AverageStar(ctx context.Context) (float64, error) {
	return s.repo.AverageStar(ctx)
}
