package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-tailor/internal/types"
)

func records(pairs ...any) []types.KeywordRecord {
	out := make([]types.KeywordRecord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, types.KeywordRecord{
			Keyword:    pairs[i].(string),
			Importance: pairs[i+1].(float64),
			Category:   types.CategoryTechnical,
		})
	}
	return out
}

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name     string
		records  []types.KeywordRecord
		resume   string
		expected float64
	}{
		{"no keywords", nil, "anything", 0.0},
		{"zero total importance", records("Go", 0.0, "SQL", 0.0), "Go and SQL", 0.0},
		{"all found", records("Go", 0.5, "SQL", 0.9), "Go and SQL", 1.0},
		{"none found", records("Go", 0.5, "SQL", 0.9), "Python", 0.0},
		{"weighted recall", records("Python", 0.8, "Java", 0.2), "I use Python daily", 0.8},
		{"frequency ignored", records("Go", 0.5, "SQL", 0.5), "Go Go Go Go Go", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keywords := make([]string, 0, len(tt.records))
			for _, r := range tt.records {
				keywords = append(keywords, r.Keyword)
			}
			matches := Index(MatchKeywords(tt.resume, keywords))
			assert.InDelta(t, tt.expected, ConfidenceScore(tt.records, matches), 1e-9)
		})
	}
}

func TestConfidenceScore_ZeroImportanceDoesNotChangeScore(t *testing.T) {
	base := records("Python", 0.8, "Java", 0.2)
	withZero := append(records("Python", 0.8, "Java", 0.2), records("Rust", 0.0, "Docker", 0.0)...)

	resume := "Python and Docker"
	baseScore := ConfidenceScore(base, Index(MatchKeywords(resume, []string{"Python", "Java"})))
	zeroScore := ConfidenceScore(withZero, Index(MatchKeywords(resume, []string{"Python", "Java", "Rust", "Docker"})))

	assert.InDelta(t, baseScore, zeroScore, 1e-9)
}

func TestConfidenceScore_MissingMatchEntryCountsAsNotFound(t *testing.T) {
	score := ConfidenceScore(records("Go", 0.5, "SQL", 0.5), map[string]types.MatchResult{
		"Go": {Found: true, Frequency: 1},
	})
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestConfidenceScore_InRange(t *testing.T) {
	recs := records("a", 0.1, "b", 0.9, "c", 0.3, "d", 1.0)
	resumes := []string{"", "a", "a b", "a b c d", "xyz", "B D"}
	for _, resume := range resumes {
		score := ConfidenceScore(recs, Index(MatchKeywords(resume, []string{"a", "b", "c", "d"})))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
