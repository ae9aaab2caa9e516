package port

import "context"

// DocumentReader abstracts the document-to-text conversion library. It
// returns the concatenated per-page text of a document, or an error when the
// byte stream cannot be parsed at all. Pages without extractable text
// contribute nothing; callers treat empty output as a distinct
// no-extractable-text condition rather than an error.
type DocumentReader interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
