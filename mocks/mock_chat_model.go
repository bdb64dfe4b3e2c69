package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lcintel/internal/domain"
)

// MockChatModel is a mock implementation of port.ChatModel.
type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Complete(ctx context.Context, system string, history []domain.ChatMessage) (string, error) {
	args := m.Called(ctx, system, history)
	return args.String(0), args.Error(1)
}
