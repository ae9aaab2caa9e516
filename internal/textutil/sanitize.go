package textutil

import (
	"regexp"
	"strings"
)

// FallbackName is returned when sanitization leaves nothing usable.
const FallbackName = "unnamed"

// forbiddenRuns matches runs of characters disallowed in filesystem names.
var forbiddenRuns = regexp.MustCompile(`[\\/:*?"<>|]+`)

// SanitizeFilename maps an arbitrary string to a filesystem-safe token.
// Runs of disallowed characters collapse to a single underscore, then the
// result is trimmed of surrounding whitespace and periods. An empty result
// becomes FallbackName. Idempotent.
func SanitizeFilename(s string) string {
	s = forbiddenRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, " \t\r\n.")
	if s == "" {
		return FallbackName
	}
	return s
}
