package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"billsense/internal/domain"
	"billsense/internal/export"
	"billsense/internal/port"
)

const (
	exportBatchSize = 500
	// MaxExportRows caps a single export to the most recent rows.
	MaxExportRows = 10000
)

// HistoryService exposes aggregate statistics and the classification history.
type HistoryService interface {
	GetStats(ctx context.Context) (*domain.ClassificationStats, error)
	List(ctx context.Context, offset, limit int) ([]domain.ClassificationRecord, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ClassificationRecord, error)
	Export(ctx context.Context, w io.Writer, format export.Format) error
}

type historyService struct {
	repo port.ClassificationRepository
}

// NewHistoryService creates a new HistoryService implementation.
func NewHistoryService(repo port.ClassificationRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) GetStats(ctx context.Context) (*domain.ClassificationStats, error) {
	return s.repo.Stats(ctx)
}

func (s *historyService) List(ctx context.Context, offset, limit int) ([]domain.ClassificationRecord, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *historyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClassificationRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Export loads up to MaxExportRows records before writing anything, so a
// repository failure never leaves a partial file in w.
func (s *historyService) Export(ctx context.Context, w io.Writer, format export.Format) error {
	recs, err := s.collect(ctx)
	if err != nil {
		return err
	}

	switch format {
	case export.FormatCSV:
		cw := export.NewCSVWriter(w)
		if err := cw.WriteHeader(); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}
		if err := cw.WriteRecords(recs); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}
		if err := cw.Flush(); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}
	case export.FormatXLSX:
		xw, err := export.NewXLSXWriter()
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}
		if err := xw.WriteRecords(recs); err != nil {
			_ = xw.Close()
			return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}
		if _, err := xw.WriteTo(w); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}
	default:
		return fmt.Errorf("%w: unsupported format %q", domain.ErrExportFailed, format)
	}
	return nil
}

func (s *historyService) collect(ctx context.Context) ([]domain.ClassificationRecord, error) {
	var all []domain.ClassificationRecord
	for offset := 0; offset < MaxExportRows; offset += exportBatchSize {
		batch, total, err := s.repo.List(ctx, offset, exportBatchSize)
		if err != nil {
			return nil, fmt.Errorf("historyService.collect: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < exportBatchSize || offset+len(batch) >= total {
			break
		}
	}
	if len(all) > MaxExportRows {
		all = all[:MaxExportRows]
	}
	return all, nil
}
