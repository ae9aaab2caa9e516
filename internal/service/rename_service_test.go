package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refile/internal/config"
	"refile/internal/domain"
)

// fakeReader maps document content to canned extraction text, keyed by the
// first line of the document body after the fake PDF header.
type fakeReader struct {
	texts map[string]string
	errs  map[string]error
}

func (f *fakeReader) ExtractText(_ context.Context, data []byte) (string, error) {
	key := string(bytes.TrimPrefix(data, []byte(pdfHeader)))
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.texts[key], nil
}

const pdfHeader = "%PDF-1.4\n"

func pdfDoc(key string) []byte {
	return []byte(pdfHeader + key)
}

func testConfigs() (*config.UploadConfig, *config.RenameConfig) {
	return &config.UploadConfig{MaxFileSizeMB: 10, MaxBatchSize: 100},
		&config.RenameConfig{ArchiveName: "renamed_invoices.zip", IncludeLedger: true}
}

func newTestService(r *fakeReader) RenameService {
	upload, rename := testConfigs()
	return NewRenameService(r, upload, rename)
}

func TestRenameOne(t *testing.T) {
	svc := newTestService(&fakeReader{texts: map[string]string{
		"a": "Corona Energy statement\nAGR0769915-IV03223288",
	}})

	doc := domain.RawDocument{Name: "march bill.pdf", Data: pdfDoc("a")}
	renamed, rec, err := svc.RenameOne(context.Background(), doc, "")
	require.NoError(t, err)

	assert.Equal(t, "AGR0769915-IV03223288.pdf", renamed.OutputName)
	assert.Equal(t, doc.Data, renamed.Data)
	assert.Equal(t, "march bill.pdf", rec.OriginalName)
	assert.Equal(t, "IV03223288", rec.InvoiceRef)
	assert.Equal(t, "AGR0769915", rec.AccountRef)
	assert.Equal(t, "Corona Energy", rec.Supplier)
}

func TestRenameOne_UnsupportedExtension(t *testing.T) {
	svc := newTestService(&fakeReader{})

	_, _, err := svc.RenameOne(context.Background(), domain.RawDocument{Name: "notes.txt", Data: pdfDoc("a")}, "")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestRenameOne_WrongMagicBytes(t *testing.T) {
	svc := newTestService(&fakeReader{})

	_, _, err := svc.RenameOne(context.Background(), domain.RawDocument{Name: "fake.pdf", Data: []byte("plain text body")}, "")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestRenameOne_TooLarge(t *testing.T) {
	upload, rename := testConfigs()
	upload.MaxFileSizeMB = 1
	svc := NewRenameService(&fakeReader{}, upload, rename)

	big := append(pdfDoc("a"), bytes.Repeat([]byte("x"), 2*1024*1024)...)
	_, _, err := svc.RenameOne(context.Background(), domain.RawDocument{Name: "big.pdf", Data: big}, "")
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestRenameBatch_EmptyBatch(t *testing.T) {
	svc := newTestService(&fakeReader{})

	_, err := svc.RenameBatch(context.Background(), nil, "")
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestRenameBatch_TooManyDocuments(t *testing.T) {
	upload, rename := testConfigs()
	upload.MaxBatchSize = 1
	svc := NewRenameService(&fakeReader{texts: map[string]string{"a": "x", "b": "y"}}, upload, rename)

	docs := []domain.RawDocument{
		{Name: "a.pdf", Data: pdfDoc("a")},
		{Name: "b.pdf", Data: pdfDoc("b")},
	}
	_, err := svc.RenameBatch(context.Background(), docs, "")
	assert.ErrorIs(t, err, domain.ErrBatchTooLarge)
}

func TestRenameBatch_ArchiveAndLedger(t *testing.T) {
	svc := newTestService(&fakeReader{
		texts: map[string]string{
			"a": "Corona Energy CN004521",
			"b": "nothing recognizable here",
		},
		errs: map[string]error{
			"c": errors.New("bad xref table"),
		},
	})

	docs := []domain.RawDocument{
		{Name: "first.pdf", Data: pdfDoc("a")},
		{Name: "scan (1).pdf", Data: pdfDoc("b")},
		{Name: "broken.pdf", Data: pdfDoc("c")},
	}

	result, err := svc.RenameBatch(context.Background(), docs, "")
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	assert.Equal(t, "CN004521.pdf", result.Records[0].OutputName)
	assert.Equal(t, "unreadable_scan (1).pdf", result.Records[1].OutputName)
	assert.Equal(t, "no invoice reference found", result.Records[1].Note)
	assert.Equal(t, "unreadable_broken.pdf", result.Records[2].OutputName)
	assert.Contains(t, result.Records[2].Note, "bad xref table")
	assert.Equal(t, "renamed_invoices.zip", result.ArchiveName)

	zr, err := zip.NewReader(bytes.NewReader(result.Archive), int64(len(result.Archive)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"CN004521.pdf", "unreadable_scan (1).pdf", "unreadable_broken.pdf", "ledger.csv"}, names)

	// Archive entries carry the original bytes.
	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, pdfDoc("a"), content)
}

func TestRenameBatch_CollisionSuffixesFollowInputOrder(t *testing.T) {
	svc := newTestService(&fakeReader{texts: map[string]string{
		"a": "Invoice Number: IV123",
		"b": "Invoice Number: IV123",
		"c": "Invoice Number: IV123",
	}})

	docs := []domain.RawDocument{
		{Name: "one.pdf", Data: pdfDoc("a")},
		{Name: "two.pdf", Data: pdfDoc("b")},
		{Name: "three.pdf", Data: pdfDoc("c")},
	}

	result, err := svc.RenameBatch(context.Background(), docs, "")
	require.NoError(t, err)

	assert.Equal(t, "IV123.pdf", result.Records[0].OutputName)
	assert.Equal(t, "IV123_1.pdf", result.Records[1].OutputName)
	assert.Equal(t, "IV123_2.pdf", result.Records[2].OutputName)
}

func TestRenameBatch_PrefixAppliedToEveryName(t *testing.T) {
	svc := newTestService(&fakeReader{texts: map[string]string{
		"a": "AGR0769915-IV03223288",
		"b": "plain text",
	}})

	docs := []domain.RawDocument{
		{Name: "one.pdf", Data: pdfDoc("a")},
		{Name: "two.pdf", Data: pdfDoc("b")},
	}

	result, err := svc.RenameBatch(context.Background(), docs, "acme_")
	require.NoError(t, err)

	assert.Equal(t, "acme_AGR0769915-IV03223288.pdf", result.Records[0].OutputName)
	assert.Equal(t, "acme_unreadable_two.pdf", result.Records[1].OutputName)
}

func TestPreview_NoBytesReturned(t *testing.T) {
	svc := newTestService(&fakeReader{texts: map[string]string{
		"a": "Site ID AGR6611 and Invoice Number: IV123",
	}})

	records, err := svc.Preview(context.Background(), []domain.RawDocument{{Name: "one.pdf", Data: pdfDoc("a")}}, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AGR6611-IV123.pdf", records[0].OutputName)
}

func TestExtract_EmptyTextIsUnreadableNotError(t *testing.T) {
	svc := newTestService(&fakeReader{texts: map[string]string{
		"a": "  \n\t ",
	}})

	_, rec, err := svc.RenameOne(context.Background(), domain.RawDocument{Name: "imgonly.pdf", Data: pdfDoc("a")}, "")
	require.NoError(t, err)
	assert.Equal(t, "unreadable_imgonly.pdf", rec.OutputName)
	assert.Equal(t, "no extractable text", rec.Note)
}
