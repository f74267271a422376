//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"technical", CategoryTechnical},
		{"Technical", CategoryTechnical},
		{"soft_skill", CategorySoftSkill},
		{"Soft Skill", CategorySoftSkill},
		{"soft-skills", CategorySoftSkill},
		{"tool", CategoryTool},
		{"Tools", CategoryTool},
		{"qualification", CategoryQualification},
		{"certification", CategoryQualification},
		{"experience", CategoryExperience},
		{"  experience  ", CategoryExperience},
		{"", CategoryTechnical},
		{"something else", CategoryTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategory(tt.input))
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range []Category{CategoryTechnical, CategorySoftSkill, CategoryTool, CategoryQualification, CategoryExperience} {
		assert.True(t, c.Valid(), "%s should be valid", c)
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("soft skill").Valid())
}

func TestKeywordMatch_JSONFlattensResult(t *testing.T) {
	m := KeywordMatch{
		Keyword: "Go",
		MatchResult: MatchResult{
			Found:     true,
			Frequency: 2,
			Contexts:  []string{"wrote Go services"},
		},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Go", decoded["keyword"])
	assert.Equal(t, true, decoded["found"])
	assert.Equal(t, float64(2), decoded["frequency"])
}

func TestResumeSection_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(ResumeSection{Name: "Skills", Content: "Go"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"section_name":"Skills","content":"Go"}`, string(data))
}
