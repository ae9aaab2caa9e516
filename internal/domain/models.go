package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawDocument is one uploaded document: its bytes plus the display name it
// arrived with. Owned by the caller for the duration of a batch.
type RawDocument struct {
	Name string
	Data []byte
}

// ExtractionResult holds the identifiers recovered from one document's text.
// InvoiceRef and AccountRef may independently be empty without ReadError being
// set; sparse matches are expected and normal. ReadError is set only when no
// text could be obtained at all.
type ExtractionResult struct {
	InvoiceRef   string `json:"invoice_ref,omitempty"`
	AccountRef   string `json:"account_ref,omitempty"`
	SupplierHint string `json:"supplier_hint,omitempty"`
	ReadError    string `json:"read_error,omitempty"`
}

// NamingDecision is the pre-sanitization output base for a document plus a
// human-readable note explaining how it was derived.
type NamingDecision struct {
	OutputBase string
	Note       string
}

// ResultRecord is one row of the batch ledger. Created once per input
// document, appended in input order, never mutated afterwards.
type ResultRecord struct {
	OriginalName string `json:"original_name"`
	AccountRef   string `json:"agr,omitempty"`
	InvoiceRef   string `json:"invoice,omitempty"`
	Supplier     string `json:"supplier,omitempty"`
	OutputName   string `json:"output_name"`
	Note         string `json:"note,omitempty"`
}

// RenamedDocument is the single-document result: the original bytes under
// their resolved output name.
type RenamedDocument struct {
	OutputName string
	Data       []byte
}

// BatchResult is the multi-document result: the zip archive plus the ordered
// ledger, one record per input document.
type BatchResult struct {
	BatchID     uuid.UUID      `json:"batch_id"`
	Records     []ResultRecord `json:"records"`
	Archive     []byte         `json:"-"`
	ArchiveName string         `json:"archive_name"`
	ProcessedAt time.Time      `json:"processed_at"`
}
