// Package extract implements the identifier extraction cascade: an ordered
// list of pattern-matching stages run over normalized document text, where
// the first stage that resolves an identifier wins.
//
// Invoice references are IV/IN/CN tokens followed by digits; account (site)
// references are AGR tokens followed by digits. Digit minimums differ between
// stages on purpose; they mirror the formats real supplier documents use, and
// unifying them would silently change which documents match.
package extract

import (
	"regexp"
	"strings"
)

// pattern is one matcher in a cascade: a compiled expression, the capture
// group holding the identifier (0 for the whole match), and an optional
// minimum length applied after hyphen normalization.
type pattern struct {
	re     *regexp.Regexp
	group  int
	minLen int
}

// hyphenRuns matches a hyphen with optional surrounding whitespace, as left
// behind by line-wrapped identifiers.
var hyphenRuns = regexp.MustCompile(`\s*-\s*`)

// Stage 1: combined hyphenated form, either token order. A single match
// resolves both identifiers and supersedes every later stage.
var (
	combinedAccountFirst = regexp.MustCompile(`(?i)\b(AGR\d{4,})\s*-\s*((?:IV|IN|CN)\d{5,})\b`)
	combinedInvoiceFirst = regexp.MustCompile(`(?i)\b((?:IV|IN|CN)\d{5,})\s*-\s*(AGR\d{4,})\b`)
)

// Stage 2: Corona Energy documents carry bare CN/IN tokens that the generic
// patterns would miss or mis-rank.
const coronaCue = "corona energy"

var coronaInvoicePatterns = []pattern{
	{re: regexp.MustCompile(`(?i)\bCN\d+\b`)},
	{re: regexp.MustCompile(`(?i)\bIN\d+\b`)},
	{re: regexp.MustCompile(`(?i)\bInvoice Number\s+((?:IV|CN)\d+)\b`), group: 1},
}

// Stage 3: generic invoice fallbacks, tried only while the invoice reference
// is still unresolved.
var genericInvoicePatterns = []pattern{
	{re: regexp.MustCompile(`(?i)\b((?:IV|IN|CN)\d{5,})\b`), group: 1},
	{re: regexp.MustCompile(`(?i)\b(?:Invoice|Credit Note)\s*(?:Number|No\.?|#)\s*:\s*((?:IV|IN|CN)\d{3,})\b`), group: 1},
	{re: regexp.MustCompile(`(?i)\b(?:Invoice|Credit Note)\s*(?:Number|No\.?|#)\s*:?\s*([0-9A-Za-z]+(?:\s*-\s*[0-9A-Za-z]+)*)`), group: 1, minLen: 5},
}

// Stage 4: account/site reference fallbacks.
var accountPatterns = []pattern{
	{re: regexp.MustCompile(`(?i)\b(AGR\d{4,})\b`), group: 1},
	{re: regexp.MustCompile(`(?i)\bSite reference ID\s*:?\s*(AGR\d{4,})\b`), group: 1},
	{re: regexp.MustCompile(`(?i)\bSite ID\s*:?\s*(AGR\d{4,})\b`), group: 1},
}

// Identifiers runs the cascade over normalized text and returns the invoice
// and account references, uppercased, or empty strings where no stage
// matched. Absence of a match is a sparse result, not an error.
func Identifiers(text string) (invoiceRef, accountRef string) {
	if inv, acc, ok := combined(text); ok {
		return inv, acc
	}

	if strings.Contains(strings.ToLower(text), coronaCue) {
		invoiceRef, _ = firstMatch(text, coronaInvoicePatterns)
	}
	if invoiceRef == "" {
		invoiceRef, _ = firstMatch(text, genericInvoicePatterns)
	}
	accountRef, _ = firstMatch(text, accountPatterns)
	return invoiceRef, accountRef
}

// combined tries the stage-1 hyphen-joined forms in both token orders.
func combined(text string) (invoiceRef, accountRef string, ok bool) {
	if m := combinedAccountFirst.FindStringSubmatch(text); m != nil {
		return canonical(m[2]), canonical(m[1]), true
	}
	if m := combinedInvoiceFirst.FindStringSubmatch(text); m != nil {
		return canonical(m[1]), canonical(m[2]), true
	}
	return "", "", false
}

// firstMatch tries each pattern in declared order and returns the first
// captured identifier that survives normalization and the length check.
func firstMatch(text string, pats []pattern) (string, bool) {
	for _, p := range pats {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		ref := canonical(m[p.group])
		if p.minLen > 0 && len(ref) < p.minLen {
			continue
		}
		if ref != "" {
			return ref, true
		}
	}
	return "", false
}

// canonical collapses wrapped hyphens inside a captured token and uppercases it.
func canonical(ref string) string {
	return strings.ToUpper(hyphenRuns.ReplaceAllString(strings.TrimSpace(ref), "-"))
}
