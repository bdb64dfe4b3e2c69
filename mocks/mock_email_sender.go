package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lcintel/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendComplianceAlert(ctx context.Context, toEmail string, alert port.ComplianceAlert) error {
	args := m.Called(ctx, toEmail, alert)
	return args.Error(0)
}
