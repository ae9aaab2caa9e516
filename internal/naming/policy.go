// Package naming turns extraction results into canonical output filenames and
// guarantees their uniqueness within a batch.
package naming

import (
	"path/filepath"
	"strings"

	"refile/internal/domain"
	"refile/internal/textutil"
)

// DefaultExtension is appended when the original name carries none.
const DefaultExtension = ".pdf"

// unreadablePrefix marks documents whose identifiers could not be extracted.
const unreadablePrefix = "unreadable_"

// Decide derives the pre-sanitization output base for a document from its
// extraction result, an optional caller prefix, and the original display
// name. Deterministic; the decision table is evaluated top-down:
//
//  1. account and invoice present -> {prefix}{account}-{invoice}
//  2. invoice only                -> {prefix}{invoice}
//  3. otherwise                   -> {prefix}unreadable_{stem of original}
func Decide(res domain.ExtractionResult, prefix, originalName string) domain.NamingDecision {
	switch {
	case res.InvoiceRef != "" && res.AccountRef != "":
		return domain.NamingDecision{
			OutputBase: prefix + res.AccountRef + "-" + res.InvoiceRef,
			Note:       "renamed from account and invoice references",
		}
	case res.InvoiceRef != "":
		return domain.NamingDecision{
			OutputBase: prefix + res.InvoiceRef,
			Note:       "account reference not found",
		}
	default:
		note := "no invoice reference found"
		if res.ReadError != "" {
			note = res.ReadError
		}
		return domain.NamingDecision{
			OutputBase: prefix + unreadablePrefix + stem(originalName),
			Note:       note,
		}
	}
}

// Filename sanitizes a naming decision's base and appends the output
// extension: the original name's extension when present, DefaultExtension
// otherwise. The result is never empty.
func Filename(d domain.NamingDecision, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = DefaultExtension
	}
	return textutil.SanitizeFilename(d.OutputBase) + ext
}

// stem returns the original display name without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
