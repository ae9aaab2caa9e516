// Package ledger renders the per-batch results ledger as CSV or XLSX.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"refile/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the ledger header row.
var columns = []string{
	"original_name",
	"agr",
	"invoice",
	"supplier",
	"output_name",
	"note",
}

// Writer wraps csv.Writer for exporting batch result records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the ledger header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords writes one CSV row per result record, in ledger order.
func (w *Writer) WriteRecords(records []domain.ResultRecord) error {
	for i := range records {
		if err := w.csv.Write(recordToRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV renders a complete ledger document: BOM, header, then one row per
// record.
func WriteCSV(w io.Writer, records []domain.ResultRecord) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	lw := NewWriter(w)
	if err := lw.WriteHeader(); err != nil {
		return err
	}
	if err := lw.WriteRecords(records); err != nil {
		return err
	}
	lw.Flush()
	return lw.Error()
}

func recordToRow(rec *domain.ResultRecord) []string {
	return []string{
		rec.OriginalName,
		rec.AccountRef,
		rec.InvoiceRef,
		rec.Supplier,
		rec.OutputName,
		rec.Note,
	}
}

// BuildFilename returns the download filename for a ledger export.
// Format: ledger_{YYYY-MM-DD}.{ext}
func BuildFilename(ext string) string {
	return fmt.Sprintf("ledger_%s.%s", time.Now().Format("2006-01-02"), ext)
}
