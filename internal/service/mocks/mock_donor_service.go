package mocks

import (
	"context"

	"foodbridge/internal/model"
	"foodbridge/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDonorService struct {
	mock.Mock
}

func (m *MockDonorService) GetByID(ctx context.Context, id int64) (*model.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorService) GetAll(ctx context.Context) ([]model.Donor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorService) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorService) UpdateByID(ctx context.Context, id int64, d *model.Donor) error {
	args := m.Called(ctx, id, d)
	return args.Error(0)
}

func (m *MockDonorService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDonorService) Search(ctx context.Context, query string) ([]model.Donor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorService) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonorService) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDonorService) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*model.Donor, error) {
	args := m.Called(ctx, id, status, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorService) GetByStatus(ctx context.Context, status string) ([]model.Donor, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorService) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonorService) GetByUserID(ctx context.Context, userID int64) (*model.Donor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorService) GetByLocation(ctx context.Context, location string) ([]model.Donor, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorService) GetByOrganization(ctx context.Context, name string) ([]model.Donor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorService) AttachFiles(ctx context.Context, id int64, photo, certificate, signature *service.Upload) (*model.Donor, error) {
	args := m.Called(ctx, id, photo, certificate, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}
