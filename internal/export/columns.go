// Package export renders classification history as CSV or XLSX.
package export

import (
	"fmt"
	"strconv"
	"time"

	"billsense/internal/domain"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format. Empty means XLSX.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case "", FormatXLSX:
		return FormatXLSX, true
	case FormatCSV:
		return FormatCSV, true
	}
	return "", false
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// columns defines the header row shared by both encodings.
var columns = []string{
	"ID",
	"Request ID",
	"Document Type",
	"Confidence",
	"Can Analyze",
	"Bill Score",
	"EOB Score",
	"Required Categories",
	"Disqualified",
	"Cache Hit",
	"Text Length",
	"Text Hash",
	"Reasoning",
	"Created At",
}

func recordToRow(rec *domain.ClassificationRecord) []string {
	return []string{
		rec.ID.String(),
		rec.RequestID,
		string(rec.DocumentType),
		strconv.Itoa(rec.Confidence),
		formatBool(rec.CanAnalyze),
		strconv.Itoa(rec.BillScore),
		strconv.Itoa(rec.EOBScore),
		strconv.Itoa(rec.RequiredCategoriesScore),
		formatBool(rec.Disqualified),
		formatBool(rec.CacheHit),
		strconv.Itoa(rec.TextLength),
		rec.TextHash,
		rec.Reasoning,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// BuildFilename returns the Content-Disposition filename for an export taken at now.
// Format: classifications_{YYYY-MM-DD}.{ext}
func BuildFilename(f Format, now time.Time) string {
	return fmt.Sprintf("classifications_%s.%s", now.Format("2006-01-02"), f)
}
