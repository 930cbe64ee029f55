package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"billsense/internal/domain"
)

const sheetName = "Classifications"

// XLSXWriter accumulates classification records into a single-sheet workbook
// backed by excelize's streaming writer.
type XLSXWriter struct {
	file   *excelize.File
	stream *excelize.StreamWriter
	row    int
}

// NewXLSXWriter creates an empty workbook with the header row in place.
func NewXLSXWriter() (*XLSXWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open stream writer: %w", err)
	}

	w := &XLSXWriter{file: f, stream: sw, row: 1}
	if err := w.writeRow(columns); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// WriteRecords appends one row per record.
func (w *XLSXWriter) WriteRecords(recs []domain.ClassificationRecord) error {
	for i := range recs {
		if err := w.writeRow(recordToRow(&recs[i])); err != nil {
			return err
		}
	}
	return nil
}

func (w *XLSXWriter) writeRow(values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := w.stream.SetRow(cell, row); err != nil {
		return fmt.Errorf("write row %d: %w", w.row, err)
	}
	w.row++
	return nil
}

// WriteTo flushes the workbook and writes it to out. The writer cannot be
// reused afterwards.
func (w *XLSXWriter) WriteTo(out io.Writer) (int64, error) {
	defer func() { _ = w.file.Close() }()
	if err := w.stream.Flush(); err != nil {
		return 0, fmt.Errorf("flush sheet: %w", err)
	}
	return w.file.WriteTo(out)
}

// Close releases the workbook without writing it.
func (w *XLSXWriter) Close() error {
	return w.file.Close()
}
