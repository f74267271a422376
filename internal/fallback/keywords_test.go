package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func keywordsOf(records []types.KeywordRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Keyword)
	}
	return out
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	first := ExtractKeywords("I know Python and Docker")
	second := ExtractKeywords("I know Python and Docker")

	assert.Equal(t, first, second)
	assert.Contains(t, keywordsOf(first), "python")
	assert.Contains(t, keywordsOf(first), "docker")
}

func TestExtractKeywords_ImportanceByCategory(t *testing.T) {
	records := ExtractKeywords("Kubernetes expert with strong leadership who lives in Jira")
	require.Len(t, records, 3)

	assert.Equal(t, types.KeywordRecord{Keyword: "kubernetes", Importance: 0.8, Category: types.CategoryTechnical}, records[0])
	assert.Equal(t, types.KeywordRecord{Keyword: "leadership", Importance: 0.6, Category: types.CategorySoftSkill}, records[1])
	assert.Equal(t, types.KeywordRecord{Keyword: "jira", Importance: 0.7, Category: types.CategoryTool}, records[2])
}

func TestExtractKeywords_ListOrder(t *testing.T) {
	records := ExtractKeywords("SQL, then Python, then Docker")
	assert.Equal(t, []string{"python", "sql", "docker"}, keywordsOf(records))
}

func TestExtractKeywords_SubstringPresence(t *testing.T) {
	records := ExtractKeywords("JavaScript")
	assert.Equal(t, []string{"java", "javascript"}, keywordsOf(records))
}

func TestExtractKeywords_NoMatches(t *testing.T) {
	records := ExtractKeywords("")
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestExtractKeywords_ValidRecords(t *testing.T) {
	for _, r := range ExtractKeywords("python react sql leadership sales excel zoom word") {
		assert.True(t, r.Category.Valid(), r.Keyword)
		assert.GreaterOrEqual(t, r.Importance, 0.0)
		assert.LessOrEqual(t, r.Importance, 1.0)
	}
}
