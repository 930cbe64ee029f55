// Package noop provides a ClassificationRepository used when no database is configured.
package noop

import (
	"context"

	"github.com/google/uuid"

	"billsense/internal/domain"
	"billsense/internal/port"
)

type classificationRepo struct{}

// NewClassificationRepo returns a repository that discards writes and
// reports history as disabled on reads.
func NewClassificationRepo() port.ClassificationRepository {
	return classificationRepo{}
}

func (classificationRepo) Create(context.Context, *domain.ClassificationRecord) error {
	return nil
}

func (classificationRepo) GetByID(context.Context, uuid.UUID) (*domain.ClassificationRecord, error) {
	return nil, domain.ErrHistoryDisabled
}

func (classificationRepo) List(context.Context, int, int) ([]domain.ClassificationRecord, int, error) {
	return nil, 0, domain.ErrHistoryDisabled
}

func (classificationRepo) Stats(context.Context) (*domain.ClassificationStats, error) {
	return nil, domain.ErrHistoryDisabled
}
