package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClassificationRecord is one persisted classification outcome. The raw
// document text is never stored, only its hash and length.
type ClassificationRecord struct {
	ID                      uuid.UUID    `db:"id" json:"id"`
	RequestID               string       `db:"request_id" json:"request_id"`
	TextHash                string       `db:"text_hash" json:"text_hash"`
	TextLength              int          `db:"text_length" json:"text_length"`
	DocumentType            DocumentType `db:"document_type" json:"document_type"`
	Confidence              int          `db:"confidence" json:"confidence"`
	CanAnalyze              bool         `db:"can_analyze" json:"can_analyze"`
	BillScore               int          `db:"bill_score" json:"bill_score"`
	EOBScore                int          `db:"eob_score" json:"eob_score"`
	RequiredCategoriesScore int          `db:"required_categories_score" json:"required_categories_score"`
	Disqualified            bool         `db:"disqualified" json:"disqualified"`
	Reasoning               string       `db:"reasoning" json:"reasoning"`
	CacheHit                bool         `db:"cache_hit" json:"cache_hit"`
	CreatedAt               time.Time    `db:"created_at" json:"created_at"`
}

// ClassificationStats holds aggregate counts over the classification history.
type ClassificationStats struct {
	Total             int     `json:"total"`
	MedicalBills      int     `json:"medical_bills"`
	EOBs              int     `json:"eobs"`
	Invalid           int     `json:"invalid"`
	Disqualified      int     `json:"disqualified"`
	Analyzable        int     `json:"analyzable"`
	AverageConfidence float64 `json:"average_confidence"`
	CacheHits         int     `json:"cache_hits"`
}
