package export

import (
	"encoding/csv"
	"io"

	"billsense/internal/domain"
)

// BOM is written ahead of CSV output so Excel on Windows detects UTF-8.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter streams classification records as CSV.
type CSVWriter struct {
	out io.Writer
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{out: w, csv: csv.NewWriter(w)}
}

// WriteHeader writes the BOM followed by the header row.
func (w *CSVWriter) WriteHeader() error {
	if _, err := w.out.Write(BOM); err != nil {
		return err
	}
	return w.csv.Write(columns)
}

// WriteRecords writes one row per record.
func (w *CSVWriter) WriteRecords(recs []domain.ClassificationRecord) error {
	for i := range recs {
		if err := w.csv.Write(recordToRow(&recs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered rows and reports any write error.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
