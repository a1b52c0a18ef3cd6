package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockReferenceChecker stands in for any repository a service consults only
// for row existence.
type MockReferenceChecker struct {
	mock.Mock
}

func (m *MockReferenceChecker) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
