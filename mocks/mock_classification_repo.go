package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billsense/internal/domain"
)

// MockClassificationRepo is a mock implementation of port.ClassificationRepository.
type MockClassificationRepo struct {
	mock.Mock
}

func (m *MockClassificationRepo) Create(ctx context.Context, rec *domain.ClassificationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockClassificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClassificationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassificationRecord), args.Error(1)
}

func (m *MockClassificationRepo) List(ctx context.Context, offset, limit int) ([]domain.ClassificationRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClassificationRecord), args.Int(1), args.Error(2)
}

func (m *MockClassificationRepo) Stats(ctx context.Context) (*domain.ClassificationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassificationStats), args.Error(1)
}
