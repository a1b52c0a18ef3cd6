package mocks

import (
	"context"

	"foodbridge/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDonorRepository struct {
	mock.Mock
}

func (m *MockDonorRepository) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindByID(ctx context.Context, id int64) (*model.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindAll(ctx context.Context) ([]model.Donor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorRepository) Update(ctx context.Context, id int64, d *model.Donor) (bool, error) {
	args := m.Called(ctx, id, d)
	return args.Bool(0), args.Error(1)
}

func (m *MockDonorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDonorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDonorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonorRepository) Search(ctx context.Context, query string) ([]model.Donor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorRepository) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*model.Donor, error) {
	args := m.Called(ctx, id, status, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindByStatus(ctx context.Context, status string) ([]model.Donor, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonorRepository) FindByUserID(ctx context.Context, userID int64) (*model.Donor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindByLocation(ctx context.Context, location string) ([]model.Donor, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindByOrganization(ctx context.Context, name string) ([]model.Donor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorRepository) SetAttachments(ctx context.Context, id int64, photo, certificate, signature *string) (*model.Donor, error) {
	args := m.Called(ctx, id, photo, certificate, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}
