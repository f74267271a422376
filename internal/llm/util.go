package llm

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractJSON finds the first valid JSON object or array in a model response.
// Code fences, preambles and trailing prose are skipped. The second result is
// false when no candidate parses.
func ExtractJSON(text string) (gjson.Result, bool) {
	text = stripCodeFence(strings.TrimSpace(text))

	for offset := 0; offset < len(text); {
		idx := strings.IndexAny(text[offset:], "{[")
		if idx < 0 {
			break
		}
		start := offset + idx
		if candidate := extractBalanced(text[start:]); candidate != "" && gjson.Valid(candidate) {
			return gjson.Parse(candidate), true
		}
		offset = start + 1
	}
	return gjson.Result{}, false
}

func stripCodeFence(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// a short first line with no spaces is a language tag
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.ContainsAny(firstLine, "{[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// extractBalanced returns the bracketed value text starts with, honouring
// string literals and escapes. It returns "" when the brackets never close.
func extractBalanced(text string) string {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[:i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}
	return ""
}
