// Package matching checks job keywords against resume text and scores the overlap.
package matching

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// contextRadius is the number of characters kept on each side of a match
	contextRadius = 50
	// maxContexts is the number of snippets kept per keyword
	maxContexts = 3
)

// MatchKeywords reports, in keyword order, whether each keyword occurs in text.
// Matching is a case-insensitive literal substring search; occurrences do not overlap.
// Callers should pass deduplicated keywords (see Dedupe).
func MatchKeywords(text string, keywords []string) []types.KeywordMatch {
	original := []rune(text)
	lowered := lowerRunes(original)

	matches := make([]types.KeywordMatch, 0, len(keywords))
	for _, keyword := range keywords {
		matches = append(matches, types.KeywordMatch{
			Keyword:     keyword,
			MatchResult: match(original, lowered, keyword),
		})
	}
	return matches
}

// Match reports whether a single keyword occurs in text
func Match(text, keyword string) types.MatchResult {
	original := []rune(text)
	return match(original, lowerRunes(original), keyword)
}

func match(original, lowered []rune, keyword string) types.MatchResult {
	result := types.MatchResult{Contexts: []string{}}

	needle := lowerRunes([]rune(keyword))
	if len(needle) == 0 {
		return result
	}

	for i := 0; i+len(needle) <= len(lowered); {
		if !runesAt(lowered, needle, i) {
			i++
			continue
		}

		result.Frequency++
		if len(result.Contexts) < maxContexts {
			start := max(0, i-contextRadius)
			end := min(len(original), i+len(needle)+contextRadius)
			result.Contexts = append(result.Contexts, strings.TrimSpace(string(original[start:end])))
		}
		i += len(needle)
	}

	result.Found = result.Frequency > 0
	return result
}

// lowerRunes lowercases rune by rune so indexes stay aligned with the original text
func lowerRunes(rs []rune) []rune {
	lowered := make([]rune, len(rs))
	for i, r := range rs {
		lowered[i] = unicode.ToLower(r)
	}
	return lowered
}

func runesAt(haystack, needle []rune, at int) bool {
	for j, r := range needle {
		if haystack[at+j] != r {
			return false
		}
	}
	return true
}

// Dedupe drops blank keywords and case-insensitive duplicates, keeping the first spelling
func Dedupe(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	result := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		key := strings.ToLower(keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, keyword)
	}
	return result
}

// DedupeRecords drops records with blank keywords and case-insensitive duplicates, keeping the first record.
// Keywords are trimmed.
func DedupeRecords(records []types.KeywordRecord) []types.KeywordRecord {
	seen := make(map[string]bool, len(records))
	result := make([]types.KeywordRecord, 0, len(records))
	for _, record := range records {
		record.Keyword = strings.TrimSpace(record.Keyword)
		if record.Keyword == "" {
			continue
		}
		key := strings.ToLower(record.Keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, record)
	}
	return result
}

// Keywords returns the keyword strings of records, in order
func Keywords(records []types.KeywordRecord) []string {
	keywords := make([]string, 0, len(records))
	for _, record := range records {
		keywords = append(keywords, record.Keyword)
	}
	return keywords
}

// Index maps each keyword to its match result
func Index(matches []types.KeywordMatch) map[string]types.MatchResult {
	index := make(map[string]types.MatchResult, len(matches))
	for _, m := range matches {
		index[m.Keyword] = m.MatchResult
	}
	return index
}

// FoundFrequencies maps each found keyword to its occurrence count
func FoundFrequencies(matches []types.KeywordMatch) map[string]int {
	found := make(map[string]int)
	for _, m := range matches {
		if m.Found {
			found[m.Keyword] = m.Frequency
		}
	}
	return found
}

// Missing returns the keywords that were not found, in keyword order
func Missing(matches []types.KeywordMatch) []string {
	missing := make([]string, 0)
	for _, m := range matches {
		if !m.Found {
			missing = append(missing, m.Keyword)
		}
	}
	return missing
}
