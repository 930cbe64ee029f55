package port

import (
	"context"

	"github.com/google/uuid"

	"billsense/internal/domain"
)

// ClassificationRepository persists classification outcomes.
type ClassificationRepository interface {
	Create(ctx context.Context, rec *domain.ClassificationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ClassificationRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.ClassificationRecord, int, error)
	Stats(ctx context.Context) (*domain.ClassificationStats, error)
}
