package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lcintel/internal/unlocode"
)

// MockLocodeRepository is a mock implementation of port.LocodeRepository.
type MockLocodeRepository struct {
	mock.Mock
}

func (m *MockLocodeRepository) LoadAll(ctx context.Context) ([]unlocode.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]unlocode.Entry), args.Error(1)
}

func (m *MockLocodeRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
