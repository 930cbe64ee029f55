package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billsense/internal/domain"
	"billsense/internal/port"
	"billsense/internal/repository/postgres"
)

var recordColumns = []string{
	"id", "request_id", "text_hash", "text_length", "document_type",
	"confidence", "can_analyze", "bill_score", "eob_score",
	"required_categories_score", "disqualified", "reasoning", "cache_hit", "created_at",
}

func newRepo(t *testing.T) (port.ClassificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return postgres.NewClassificationRepo(sqlx.NewDb(sqlDB, "pgx")), mock
}

func TestClassificationRepo_Create(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO classifications")).
		WithArgs(
			sqlmock.AnyArg(), "req-1", "abc", 42, "MEDICAL_BILL",
			77, true, 74, 0,
			3, false, "Bill score (74) meets threshold (30)", false, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := &domain.ClassificationRecord{
		RequestID:               "req-1",
		TextHash:                "abc",
		TextLength:              42,
		DocumentType:            domain.DocumentTypeMedicalBill,
		Confidence:              77,
		CanAnalyze:              true,
		BillScore:               74,
		RequiredCategoriesScore: 3,
		Reasoning:               "Bill score (74) meets threshold (30)",
	}
	require.NoError(t, repo.Create(context.Background(), rec))

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassificationRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM classifications WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassificationRepo_List(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM classifications")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM classifications")).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
			id.String(), "req-9", "hash", 120, "EOB",
			90, true, 64, 52,
			4, false, `Document explicitly states "this is not a bill"`, true, now,
		))

	recs, total, err := repo.List(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0].ID)
	assert.Equal(t, domain.DocumentTypeEOB, recs[0].DocumentType)
	assert.True(t, recs[0].CacheHit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassificationRepo_Stats(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classifications")).
		WithArgs("MEDICAL_BILL", "EOB", "INVALID").
		WillReturnRows(sqlmock.NewRows([]string{
			"total", "medical_bills", "eobs", "invalid", "disqualified",
			"analyzable", "average_confidence", "cache_hits",
		}).AddRow(10, 6, 2, 2, 1, 8, 81.5, 3))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.ClassificationStats{
		Total: 10, MedicalBills: 6, EOBs: 2, Invalid: 2, Disqualified: 1,
		Analyzable: 8, AverageConfidence: 81.5, CacheHits: 3,
	}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
