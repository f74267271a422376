package tailoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// minSuggestionLength drops list items that are too short to be advice
	minSuggestionLength = 10
	maxSuggestions      = 7
	minSuggestions      = 5
)

// listMarker matches one leading list marker: "1.", "2)", "-", "•" or "*" followed by whitespace
var listMarker = regexp.MustCompile(`^(?:\d+[.)]|[-•*])\s+`)

// extractList finds a JSON array in model output, either bare or under key in an object
func extractList(text, key string) (gjson.Result, error) {
	value, found := llm.ExtractJSON(text)
	if !found {
		return gjson.Result{}, &llm.ParseError{Message: "no JSON value in model output"}
	}
	if value.IsObject() {
		value = value.Get(key)
	}
	if !value.IsArray() {
		return gjson.Result{}, &llm.ParseError{Message: fmt.Sprintf("expected a JSON array or an object with a %q array", key)}
	}
	return value, nil
}

func decodeKeywords(text string) Result[[]types.KeywordRecord] {
	list, err := extractList(text, "keywords")
	if err != nil {
		return parseFailure[[]types.KeywordRecord](err)
	}
	if err := schemas.Validate(schemas.Keywords, list.Raw); err != nil {
		return parseFailure[[]types.KeywordRecord](&llm.ParseError{Message: "keywords do not match schema", Cause: err})
	}

	records := make([]types.KeywordRecord, 0)
	list.ForEach(func(_, item gjson.Result) bool {
		keyword := strings.TrimSpace(item.Get("keyword").String())
		if keyword != "" {
			records = append(records, types.KeywordRecord{
				Keyword:    keyword,
				Importance: item.Get("importance").Float(),
				Category:   types.ParseCategory(item.Get("category").String()),
			})
		}
		return true
	})
	if len(records) == 0 {
		return parseFailure[[]types.KeywordRecord](&llm.ParseError{Message: "model returned no keywords"})
	}
	return ok(records)
}

func decodeSections(text string) Result[[]types.ResumeSection] {
	list, err := extractList(text, "sections")
	if err != nil {
		return parseFailure[[]types.ResumeSection](err)
	}
	if err := schemas.Validate(schemas.Sections, list.Raw); err != nil {
		return parseFailure[[]types.ResumeSection](&llm.ParseError{Message: "sections do not match schema", Cause: err})
	}

	sections := make([]types.ResumeSection, 0)
	list.ForEach(func(_, item gjson.Result) bool {
		name := strings.TrimSpace(item.Get("section_name").String())
		content := strings.TrimSpace(item.Get("content").String())
		if name != "" && content != "" {
			sections = append(sections, types.ResumeSection{Name: name, Content: content})
		}
		return true
	})
	if len(sections) == 0 {
		return parseFailure[[]types.ResumeSection](&llm.ParseError{Message: "model returned no sections"})
	}
	return ok(sections)
}

func decodeTailored(text string) Result[string] {
	return ok(strings.TrimSpace(text))
}

// decodeSuggestions reads a numbered or bulleted list. When the output has no
// list markers at all, each non-empty line is taken as a suggestion.
func decodeSuggestions(text string) Result[[]string] {
	var listed, plain []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if loc := listMarker.FindStringIndex(line); loc != nil {
			listed = append(listed, strings.TrimSpace(line[loc[1]:]))
			continue
		}
		plain = append(plain, line)
	}

	candidates := listed
	if len(listed) == 0 {
		candidates = plain
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, s := range candidates {
		if utf8.RuneCountInString(s) <= minSuggestionLength {
			continue
		}
		suggestions = append(suggestions, s)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	if len(suggestions) == 0 {
		return parseFailure[[]string](&llm.ParseError{Message: "no suggestions in model output"})
	}
	return ok(suggestions)
}

// topUp pads suggestions with generic advice until there are at least minSuggestions
func topUp(suggestions, generic []string) []string {
	seen := make(map[string]bool, len(suggestions))
	for _, s := range suggestions {
		seen[strings.ToLower(s)] = true
	}
	for _, g := range generic {
		if len(suggestions) >= minSuggestions {
			break
		}
		if seen[strings.ToLower(g)] {
			continue
		}
		suggestions = append(suggestions, g)
	}
	return suggestions
}
