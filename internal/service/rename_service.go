package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"refile/internal/config"
	"refile/internal/domain"
	"refile/internal/extract"
	"refile/internal/ledger"
	"refile/internal/naming"
	"refile/internal/port"
	"refile/internal/supplier"
	"refile/internal/textutil"
)

// ledgerEntryName is the ledger's filename inside a batch archive.
const ledgerEntryName = "ledger.csv"

// RenameService is the batch orchestrator: it runs extraction, naming, and
// collision resolution over caller-supplied documents in their given order.
type RenameService interface {
	// RenameOne processes a single document and returns its renamed bytes
	// alongside the ledger record. No archive is produced.
	RenameOne(ctx context.Context, doc domain.RawDocument, prefix string) (*domain.RenamedDocument, domain.ResultRecord, error)
	// RenameBatch processes documents strictly in the given order and packages
	// them into a zip archive under their resolved unique names.
	RenameBatch(ctx context.Context, docs []domain.RawDocument, prefix string) (*domain.BatchResult, error)
	// Preview runs extraction and naming without returning any document bytes.
	Preview(ctx context.Context, docs []domain.RawDocument, prefix string) ([]domain.ResultRecord, error)
}

type renameService struct {
	reader port.DocumentReader
	upload *config.UploadConfig
	rename *config.RenameConfig
}

// NewRenameService creates a new RenameService implementation.
func NewRenameService(reader port.DocumentReader, upload *config.UploadConfig, rename *config.RenameConfig) RenameService {
	return &renameService{
		reader: reader,
		upload: upload,
		rename: rename,
	}
}

func (s *renameService) RenameOne(ctx context.Context, doc domain.RawDocument, prefix string) (*domain.RenamedDocument, domain.ResultRecord, error) {
	if err := s.validate(doc); err != nil {
		return nil, domain.ResultRecord{}, err
	}

	rec := s.process(ctx, doc, prefix, naming.NewResolver())
	return &domain.RenamedDocument{OutputName: rec.OutputName, Data: doc.Data}, rec, nil
}

func (s *renameService) RenameBatch(ctx context.Context, docs []domain.RawDocument, prefix string) (*domain.BatchResult, error) {
	records, err := s.run(ctx, docs, prefix)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i := range docs {
		w, err := zw.Create(records[i].OutputName)
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %q: %w", records[i].OutputName, err)
		}
		if _, err := w.Write(docs[i].Data); err != nil {
			return nil, fmt.Errorf("writing archive entry %q: %w", records[i].OutputName, err)
		}
	}
	if s.rename.IncludeLedger {
		w, err := zw.Create(ledgerEntryName)
		if err != nil {
			return nil, fmt.Errorf("creating ledger entry: %w", err)
		}
		if err := ledger.WriteCSV(w, records); err != nil {
			return nil, fmt.Errorf("writing ledger entry: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}

	return &domain.BatchResult{
		BatchID:     uuid.New(),
		Records:     records,
		Archive:     buf.Bytes(),
		ArchiveName: s.rename.ArchiveName,
		ProcessedAt: time.Now().UTC(),
	}, nil
}

func (s *renameService) Preview(ctx context.Context, docs []domain.RawDocument, prefix string) ([]domain.ResultRecord, error) {
	return s.run(ctx, docs, prefix)
}

// run validates the batch preconditions, then processes every document
// sequentially with a fresh collision namespace. Per-document failures are
// downgraded to ledger notes; they never abort the batch.
func (s *renameService) run(ctx context.Context, docs []domain.RawDocument, prefix string) ([]domain.ResultRecord, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if s.upload.MaxBatchSize > 0 && len(docs) > s.upload.MaxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit %d", domain.ErrBatchTooLarge, len(docs), s.upload.MaxBatchSize)
	}
	for i := range docs {
		if err := s.validate(docs[i]); err != nil {
			return nil, fmt.Errorf("%q: %w", docs[i].Name, err)
		}
	}

	resolver := naming.NewResolver()
	records := make([]domain.ResultRecord, 0, len(docs))
	for i := range docs {
		records = append(records, s.process(ctx, docs[i], prefix, resolver))
	}
	return records, nil
}

// process runs the per-document pipeline: read, normalize, extract, name,
// resolve collisions. Always produces a record; a document is never dropped.
func (s *renameService) process(ctx context.Context, doc domain.RawDocument, prefix string, resolver *naming.Resolver) domain.ResultRecord {
	res := s.extractResult(ctx, doc)
	decision := naming.Decide(res, prefix, doc.Name)
	outputName := resolver.Resolve(naming.Filename(decision, doc.Name))

	log.Printf("renameService.process: %q -> %q (invoice=%q agr=%q supplier=%q)",
		doc.Name, outputName, res.InvoiceRef, res.AccountRef, res.SupplierHint)

	return domain.ResultRecord{
		OriginalName: doc.Name,
		AccountRef:   res.AccountRef,
		InvoiceRef:   res.InvoiceRef,
		Supplier:     res.SupplierHint,
		OutputName:   outputName,
		Note:         decision.Note,
	}
}

// extractResult converts document bytes into an ExtractionResult. A parse
// failure or text-free document sets ReadError; identifier misses leave the
// fields empty without an error.
func (s *renameService) extractResult(ctx context.Context, doc domain.RawDocument) domain.ExtractionResult {
	text, err := s.reader.ExtractText(ctx, doc.Data)
	if err != nil {
		log.Printf("renameService.extractResult: could not read %q: %v", doc.Name, err)
		return domain.ExtractionResult{ReadError: "could not read file: " + err.Error()}
	}

	normalized := textutil.Normalize(text)
	if normalized == "" {
		return domain.ExtractionResult{ReadError: "no extractable text"}
	}

	res := domain.ExtractionResult{SupplierHint: string(supplier.Detect(normalized))}
	res.InvoiceRef, res.AccountRef = extract.Identifiers(normalized)
	return res
}

// validate enforces upload preconditions: allowed extension, size limit, and
// a magic-byte content check.
func (s *renameService) validate(doc domain.RawDocument) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(doc.Name), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return domain.ErrUnsupportedFileType
	}

	if maxBytes := s.upload.MaxFileSizeMB * 1024 * 1024; maxBytes > 0 && int64(len(doc.Data)) > maxBytes {
		return domain.ErrFileTooLarge
	}

	head := doc.Data
	if len(head) > 512 {
		head = head[:512]
	}
	if _, ok := domain.AllowedContentTypes[http.DetectContentType(head)]; !ok {
		return domain.ErrUnsupportedFileType
	}
	return nil
}
