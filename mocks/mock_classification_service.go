package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billsense/internal/service"
)

// MockClassificationService is a mock implementation of service.ClassificationService.
type MockClassificationService struct {
	mock.Mock
}

func (m *MockClassificationService) Classify(ctx context.Context, input service.ClassifyInput) (*service.ClassifyOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClassifyOutput), args.Error(1)
}
