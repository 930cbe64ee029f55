package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billsense/internal/classifier"
)

// MockResultCache is a mock implementation of port.ResultCache.
type MockResultCache struct {
	mock.Mock
}

func (m *MockResultCache) Get(ctx context.Context, key string) (*classifier.Matrix, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classifier.Matrix), args.Error(1)
}

func (m *MockResultCache) Set(ctx context.Context, key string, matrix *classifier.Matrix) error {
	args := m.Called(ctx, key, matrix)
	return args.Error(0)
}
