package matching

import "github.com/jonathan/resume-tailor/internal/types"

// ConfidenceScore is the importance-weighted share of keywords found in the resume.
// It is a recall measure: occurrence counts and resume content beyond the keywords
// do not affect it. The result is in [0, 1]; no keywords or zero total importance give 0.
func ConfidenceScore(records []types.KeywordRecord, matches map[string]types.MatchResult) float64 {
	if len(records) == 0 {
		return 0.0
	}

	totalImportance := 0.0
	for _, record := range records {
		totalImportance += record.Importance
	}
	if totalImportance <= 0 {
		return 0.0
	}

	matchedImportance := 0.0
	for _, record := range records {
		if m, ok := matches[record.Keyword]; ok && m.Found {
			matchedImportance += record.Importance
		}
	}

	score := matchedImportance / totalImportance
	return max(0.0, min(1.0, score))
}
