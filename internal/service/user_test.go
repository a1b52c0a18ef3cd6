package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"foodbridge/internal/model"
	repoMocks "foodbridge/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the plain password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Password != "s3cret" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")) == nil
		})).Return(&model.User{ID: 1, Username: "asha"}, nil)

		svc := NewUserService(mRepo)
		u, err := svc.Signup(ctx, "asha", "asha@example.com", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("blank fields rejected", func(t *testing.T) {
		svc := NewUserService(new(repoMocks.MockUserRepository))
		_, err := svc.Signup(ctx, "  ", "a@example.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{ID: 1, Username: "asha", Password: string(hash)}

	t.Run("correct password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "asha").Return(stored, nil)

		svc := NewUserService(mRepo)
		u, err := svc.Login(ctx, "asha", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "asha").Return(stored, nil)

		svc := NewUserService(mRepo)
		_, err := svc.Login(ctx, "asha", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown account yields the same error", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "ghost").Return(nil, sql.ErrNoRows)

		svc := NewUserService(mRepo)
		_, err := svc.Login(ctx, "ghost", "anything")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("old-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, Password: string(hash)}, nil)
		mRepo.On("SetPassword", ctx, int64(1), mock.MatchedBy(func(h string) bool {
			return bcrypt.CompareHashAndPassword([]byte(h), []byte("new-pw")) == nil
		})).Return(true, nil)

		svc := NewUserService(mRepo)
		err := svc.ChangePassword(ctx, 1, "old-pw", "new-pw")

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("wrong old password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByID", ctx, int64(1)).Return(&model.User{ID: 1, Password: string(hash)}, nil)

		svc := NewUserService(mRepo)
		err := svc.ChangePassword(ctx, 1, "wrong", "new-pw")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mRepo.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("blank values keep current ones", func(t *testing.T) {
		created := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
		updated := created.Add(48 * time.Hour)

		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByID", ctx, int64(1)).
			Return(&model.User{ID: 1, Username: "asha", Email: "asha@example.com", UpdatedAt: created}, nil).Once()
		mRepo.On("Update", ctx, int64(1), mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "asha" && u.Email == "new@example.com"
		})).Return(true, nil).Once()
		mRepo.On("FindByID", ctx, int64(1)).
			Return(&model.User{ID: 1, Username: "asha", Email: "new@example.com", UpdatedAt: updated}, nil).Once()

		svc := NewUserService(mRepo)
		u, err := svc.UpdateInfo(ctx, 1, "", "new@example.com")

		require.NoError(t, err)
		assert.Equal(t, "asha", u.Username)
		assert.Equal(t, "new@example.com", u.Email)
		// The returned row is the stored one, not the locally mutated copy.
		assert.Equal(t, updated, u.UpdatedAt)
		mRepo.AssertExpectations(t)
	})
}
