// Package textutil provides the text canonicalization helpers the extraction
// pipeline depends on: whitespace normalization of extracted page text and
// filesystem-safe filename sanitization.
package textutil

import (
	"regexp"
	"strings"
)

// newlineRuns matches one or more consecutive CR/LF sequences.
var newlineRuns = regexp.MustCompile(`(?:\r\n|\r|\n)+`)

// spaceRuns matches runs of spaces and tabs.
var spaceRuns = regexp.MustCompile(`[ \t]+`)

// Normalize canonicalizes raw extracted text for pattern matching: runs of
// carriage-return/line-feed sequences collapse to a single newline, runs of
// spaces/tabs collapse to a single space, and leading/trailing whitespace is
// trimmed. Total over all strings including the empty string.
func Normalize(s string) string {
	s = newlineRuns.ReplaceAllString(s, "\n")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
