// Package pdftext adapts github.com/ledongthuc/pdf to the DocumentReader
// port: document bytes in, concatenated per-page plain text out.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"refile/internal/port"
)

// Reader extracts plain text from PDF byte streams.
type Reader struct{}

// NewReader creates a PDF text Reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ port.DocumentReader = (*Reader)(nil)

// ExtractText parses the PDF and concatenates the plain text of every page.
// Pages whose text cannot be decoded contribute nothing. The pdf library
// panics on some malformed inputs; that is recovered and reported as a parse
// error, since a malformed document is an expected class of input.
func (r *Reader) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("parsing pdf: %v", p)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("pdftext.ExtractText: skipping page %d: %v", i, err)
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
