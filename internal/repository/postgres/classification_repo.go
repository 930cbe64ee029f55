package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billsense/internal/domain"
	"billsense/internal/port"
)

type classificationRepo struct {
	db *sqlx.DB
}

// NewClassificationRepo creates a new PostgreSQL-backed ClassificationRepository.
func NewClassificationRepo(db *sqlx.DB) port.ClassificationRepository {
	return &classificationRepo{db: db}
}

func (r *classificationRepo) Create(ctx context.Context, rec *domain.ClassificationRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now().UTC()

	query := `INSERT INTO classifications (
		id, request_id, text_hash, text_length, document_type,
		confidence, can_analyze, bill_score, eob_score,
		required_categories_score, disqualified, reasoning, cache_hit, created_at
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8, $9,
		$10, $11, $12, $13, $14
	)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.RequestID, rec.TextHash, rec.TextLength, rec.DocumentType,
		rec.Confidence, rec.CanAnalyze, rec.BillScore, rec.EOBScore,
		rec.RequiredCategoriesScore, rec.Disqualified, rec.Reasoning, rec.CacheHit, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("classificationRepo.Create: %w", err)
	}
	return nil
}

func (r *classificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClassificationRecord, error) {
	var rec domain.ClassificationRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM classifications WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("classificationRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *classificationRepo) List(ctx context.Context, offset, limit int) ([]domain.ClassificationRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM classifications"); err != nil {
		return nil, 0, fmt.Errorf("classificationRepo.List count: %w", err)
	}

	var recs []domain.ClassificationRecord
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM classifications
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("classificationRepo.List: %w", err)
	}
	return recs, total, nil
}

func (r *classificationRepo) Stats(ctx context.Context) (*domain.ClassificationStats, error) {
	var row struct {
		Total             int     `db:"total"`
		MedicalBills      int     `db:"medical_bills"`
		EOBs              int     `db:"eobs"`
		Invalid           int     `db:"invalid"`
		Disqualified      int     `db:"disqualified"`
		Analyzable        int     `db:"analyzable"`
		AverageConfidence float64 `db:"average_confidence"`
		CacheHits         int     `db:"cache_hits"`
	}
	err := r.db.GetContext(ctx, &row, `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE document_type = $1) AS medical_bills,
		COUNT(*) FILTER (WHERE document_type = $2) AS eobs,
		COUNT(*) FILTER (WHERE document_type = $3) AS invalid,
		COUNT(*) FILTER (WHERE disqualified) AS disqualified,
		COUNT(*) FILTER (WHERE can_analyze) AS analyzable,
		COALESCE(AVG(confidence), 0)::float8 AS average_confidence,
		COUNT(*) FILTER (WHERE cache_hit) AS cache_hits
		FROM classifications`,
		domain.DocumentTypeMedicalBill, domain.DocumentTypeEOB, domain.DocumentTypeInvalid)
	if err != nil {
		return nil, fmt.Errorf("classificationRepo.Stats: %w", err)
	}
	return &domain.ClassificationStats{
		Total:             row.Total,
		MedicalBills:      row.MedicalBills,
		EOBs:              row.EOBs,
		Invalid:           row.Invalid,
		Disqualified:      row.Disqualified,
		Analyzable:        row.Analyzable,
		AverageConfidence: row.AverageConfidence,
		CacheHits:         row.CacheHits,
	}, nil
}
