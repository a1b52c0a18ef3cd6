package service

import (
	"context"
	"strings"
	"testing"

	"foodbridge/internal/model"
	repoMocks "foodbridge/internal/repository/mocks"
	"foodbridge/internal/storage"
	storeMocks "foodbridge/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockRequestRepository)
		mRecipients := new(repoMocks.MockReferenceChecker)
		mRecipients.On("Exists", ctx, int64(3)).Return(true, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Request) bool {
			return r.Status == StatusPending && r.Remarks == ""
		})).Return(&model.Request{ID: 1, RecipientID: 3, Status: StatusPending}, nil)

		svc := NewRequestService(mRepo, mRecipients, nil)
		got, err := svc.Create(ctx, &model.Request{RecipientID: 3, Title: "Rice for shelter"})

		assert.NoError(t, err)
		assert.Equal(t, StatusPending, got.Status)
		mRepo.AssertExpectations(t)
		mRecipients.AssertExpectations(t)
	})

	t.Run("missing recipient persists nothing", func(t *testing.T) {
		mRepo := new(repoMocks.MockRequestRepository)
		mRecipients := new(repoMocks.MockReferenceChecker)
		mRecipients.On("Exists", ctx, int64(404)).Return(false, nil)

		svc := NewRequestService(mRepo, mRecipients, nil)
		got, err := svc.Create(ctx, &model.Request{RecipientID: 404, Title: "Orphan request"})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrMissingReference)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mRecipients.AssertExpectations(t)
	})
}

func TestRequestService_AttachPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("stores under the owning recipient", func(t *testing.T) {
		mRepo := new(repoMocks.MockRequestRepository)
		mStore := new(storeMocks.MockStorage)
		mRepo.On("FindByID", ctx, int64(9)).Return(&model.Request{ID: 9, RecipientID: 4}, nil)
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/requests/4/photo_") && strings.HasSuffix(key, ".jpg")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		mRepo.On("SetPhoto", ctx, int64(9), mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "/uploads/requests/4/photo_")
		})).Return(&model.Request{ID: 9, RecipientID: 4, Photo: "/uploads/requests/4/photo_1.jpg"}, nil)

		svc := NewRequestService(mRepo, new(repoMocks.MockReferenceChecker), NewAttacher(mStore))
		got, err := svc.AttachPhoto(ctx, 9, &Upload{
			Reader:      strings.NewReader("jpegbytes"),
			Filename:    "meal.jpg",
			Size:        9,
			ContentType: "image/jpeg",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, got.Photo)
		mRepo.AssertExpectations(t)
		mStore.AssertExpectations(t)
	})

	t.Run("empty upload", func(t *testing.T) {
		mRepo := new(repoMocks.MockRequestRepository)
		mRepo.On("FindByID", ctx, int64(9)).Return(&model.Request{ID: 9, RecipientID: 4}, nil)

		svc := NewRequestService(mRepo, new(repoMocks.MockReferenceChecker), NewAttacher(new(storeMocks.MockStorage)))
		_, err := svc.AttachPhoto(ctx, 9, &Upload{Filename: "empty.jpg"})

		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}
