package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billsense/internal/domain"
	"billsense/internal/export"
)

// MockHistoryService is a mock implementation of service.HistoryService.
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) GetStats(ctx context.Context) (*domain.ClassificationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassificationStats), args.Error(1)
}

func (m *MockHistoryService) List(ctx context.Context, offset, limit int) ([]domain.ClassificationRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ClassificationRecord), args.Int(1), args.Error(2)
}

func (m *MockHistoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClassificationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassificationRecord), args.Error(1)
}

// Export writes the configured payload (argument index 0, []byte) to w
// before returning the configured error.
func (m *MockHistoryService) Export(ctx context.Context, w io.Writer, format export.Format) error {
	args := m.Called(ctx, w, format)
	if payload, ok := args.Get(0).([]byte); ok && payload != nil {
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	return args.Error(1)
}
