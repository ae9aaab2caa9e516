package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "Invoice Number IV12345", "Invoice Number IV12345"},
		{"space runs", "Invoice   Number\t\tIV12345", "Invoice Number IV12345"},
		{"crlf runs", "line one\r\n\r\n\r\nline two", "line one\nline two"},
		{"mixed line endings", "a\rb\nc\r\nd", "a\nb\nc\nd"},
		{"leading and trailing", "  \n Invoice \n  ", "Invoice"},
		{"wrapped line", "Site reference\nID: AGR1234", "Site reference\nID: AGR1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_NoInternalRuns(t *testing.T) {
	inputs := []string{
		"a  b\t\tc \t d",
		"\r\n\r\nx\r\r\ry\n\n\n",
		"   ",
		"a \r\n \r\n b",
	}

	for _, in := range inputs {
		out := Normalize(in)
		assert.NotContains(t, out, "  ")
		assert.NotContains(t, out, "\t")
		assert.NotContains(t, out, "\n\n")
		assert.NotContains(t, out, "\r")
		assert.Equal(t, strings.TrimSpace(out), out)
	}
}
