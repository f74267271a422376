package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}\x{2000}-\x{200A}\x{202F}\x{3000}]+`)
	blankLineRun    = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans extracted resume or job description text while preserving line structure.
// Line endings become LF, control characters (NUL bytes and other PDF artifacts) are
// removed, runs of spaces and tabs collapse to one space, and each line is trimmed.
func Normalize(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Drop control characters, keeping newlines and tabs for step 3
	content = stripControl(content)

	// 3. Clean each line
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	result := strings.Join(lines, "\n")

	// 4. Keep at most one blank line between blocks
	result = blankLineRun.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine collapses horizontal whitespace and trims the line
func cleanLine(line string) string {
	line = horizontalSpace.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

func stripControl(content string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r == '\uFEFF' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, content)
}
