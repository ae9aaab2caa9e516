// Package supplier infers an advisory vendor label from document text.
// The label is surfaced in the batch ledger only; naming never depends on it.
package supplier

import (
	"strings"

	"refile/internal/domain"
)

// rule maps a set of lowercase keyword cues to a supplier label. The first
// rule with any matching cue wins, so rule order is the tie-break when text
// could match more than one label.
type rule struct {
	keywords []string
	label    domain.Supplier
}

var rules = []rule{
	{[]string{"corona energy"}, domain.SupplierCoronaEnergy},
	{[]string{"british gas", "centrica"}, domain.SupplierBritishGas},
	{[]string{"edf energy"}, domain.SupplierEDF},
	{[]string{"e.on next", "eon next", "e.on uk"}, domain.SupplierEONNext},
	{[]string{"octopus energy"}, domain.SupplierOctopus},
	{[]string{"totalenergies", "total gas & power"}, domain.SupplierTotalEnergies},
	{[]string{"sse energy"}, domain.SupplierSSE},
	{[]string{"scottishpower", "scottish power"}, domain.SupplierScottishPower},
	{[]string{"opus energy"}, domain.SupplierOpusEnergy},
}

// Detect returns the first supplier label whose keyword cues appear in text,
// matched case-insensitively, or empty string when nothing matches.
func Detect(text string) domain.Supplier {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.label
			}
		}
	}
	return ""
}
