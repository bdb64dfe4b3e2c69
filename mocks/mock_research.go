package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lcintel/internal/port"
)

// MockSwiftDirectory is a mock implementation of port.SwiftDirectory.
type MockSwiftDirectory struct {
	mock.Mock
}

func (m *MockSwiftDirectory) LookupSwift(ctx context.Context, code string) (*port.SwiftRecord, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SwiftRecord), args.Error(1)
}

// MockGeocoder is a mock implementation of port.Geocoder.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, name string) ([]port.Place, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.Place), args.Error(1)
}

// MockResearcher is a mock implementation of port.Researcher.
type MockResearcher struct {
	mock.Mock
}

func (m *MockResearcher) Ask(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

// MockSearcher is a mock implementation of port.Searcher.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string, numResults int) ([]port.SearchHit, error) {
	args := m.Called(ctx, query, numResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.SearchHit), args.Error(1)
}
