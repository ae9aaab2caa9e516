package supplier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"refile/internal/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.Supplier
	}{
		{"corona lowercase", "invoice from corona energy ltd", domain.SupplierCoronaEnergy},
		{"corona mixed case", "CORONA Energy statement", domain.SupplierCoronaEnergy},
		{"british gas via centrica", "Centrica plc billing", domain.SupplierBritishGas},
		{"octopus", "Octopus Energy Group", domain.SupplierOctopus},
		{"scottish power spaced", "Scottish Power bill", domain.SupplierScottishPower},
		{"no match", "generic invoice text", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.text))
		})
	}
}

func TestDetect_RuleOrderBreaksTies(t *testing.T) {
	// Text mentioning two suppliers resolves to whichever rule is declared first.
	text := "Transferred from British Gas to Corona Energy"
	assert.Equal(t, domain.SupplierCoronaEnergy, Detect(text))
}
