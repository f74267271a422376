package ingestion

import (
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
		{"whitespace only", " \t\n\r\n ", ""},
		{"collapse spaces", "Line    with \t multiple   spaces", "Line with multiple spaces"},
		{"line endings", "Line 1\r\nLine 2\rLine 3\nLine 4", "Line 1\nLine 2\nLine 3\nLine 4"},
		{"null bytes", "Py\x00thon\x00", "Python"},
		{"control characters", "Go\x07 developer\x1b", "Go developer"},
		{"byte order mark", "\ufeffSummary", "Summary"},
		{"non-breaking space", "Senior\u00a0Engineer", "Senior Engineer"},
		{"trim lines", "   Experience   \n   Did work  ", "Experience\nDid work"},
		{"excessive blank lines", "Line 1\n\n\n\n\nLine 2", "Line 1\n\nLine 2"},
		{"keeps single blank line", "Line 1\n\nLine 2", "Line 1\n\nLine 2"},
		{"blank lines with spaces", "Line 1\n  \n \t \n   \nLine 2", "Line 1\n\nLine 2"},
		{"unicode kept", "Résumé — naïve café", "Résumé — naïve café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := "  Summary \r\n\r\n\r\n Built   things\x00\n\tExperience\n"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}
