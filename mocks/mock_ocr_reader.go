package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockOCRReader is a mock implementation of port.OCRReader.
type MockOCRReader struct {
	mock.Mock
}

func (m *MockOCRReader) ReadText(ctx context.Context, fileBytes []byte) (string, error) {
	args := m.Called(ctx, fileBytes)
	return args.String(0), args.Error(1)
}
