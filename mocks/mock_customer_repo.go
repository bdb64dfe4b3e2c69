package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lcintel/internal/domain"
)

// MockCustomerRepository is a mock implementation of port.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) LookupByAccount(ctx context.Context, customerNo, accountNo string) (*domain.CustomerRecord, error) {
	args := m.Called(ctx, customerNo, accountNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerRecord), args.Error(1)
}
