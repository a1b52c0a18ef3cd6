package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// UserService defines the account use cases: signup, login, password and
// profile changes, plus the generic read/search surface. Password hashes are
// produced and checked with bcrypt and never leave this layer in plain form.
type UserService interface {
	Signup(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
	UpdateInfo(ctx context.Context, id int64, username, email string) (*model.User, error)

	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type userService struct {
	crudService[model.User]
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		crudService: crudService[model.User]{repo: repo},
		repo:        repo,
	}
}

// Signup registers a new account. Username and email uniqueness is enforced
// by the store at write time and reported as *repository.DuplicateError.
func (s *userService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	})
}

// Login verifies the password against the stored hash. A missing account and
// a wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ok, err := s.repo.SetPassword(ctx, id, string(hash))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// UpdateInfo changes username and/or email; blank values keep the current
// ones. Uniqueness is re-checked by the store on write.
func (s *userService) UpdateInfo(ctx context.Context, id int64, username, email string) (*model.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(username); v != "" {
		u.Username = v
	}
	if v := strings.TrimSpace(email); v != "" {
		u.Email = v
	}
	if err := s.UpdateByID(ctx, id, u); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}
