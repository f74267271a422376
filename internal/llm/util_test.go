package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantRaw  string
		wantKind string
	}{
		{
			name:     "bare array",
			input:    `[{"keyword": "Go", "importance": 0.9, "category": "technical"}]`,
			wantOK:   true,
			wantRaw:  `[{"keyword": "Go", "importance": 0.9, "category": "technical"}]`,
			wantKind: "array",
		},
		{
			name:     "fenced object",
			input:    "```json\n{\"keywords\": []}\n```",
			wantOK:   true,
			wantRaw:  `{"keywords": []}`,
			wantKind: "object",
		},
		{
			name:     "preamble and trailer",
			input:    "Sure! Here are the keywords:\n[\"Go\", \"SQL\"]\nHope this helps.",
			wantOK:   true,
			wantRaw:  `["Go", "SQL"]`,
			wantKind: "array",
		},
		{
			name:     "skips bracketed prose before real JSON",
			input:    "Keywords [see below]: {\"keywords\": [\"Go\"]}",
			wantOK:   true,
			wantRaw:  `{"keywords": ["Go"]}`,
			wantKind: "object",
		},
		{
			name:     "generic fence with language tag",
			input:    "```javascript\n{\"sections\": []}\n```",
			wantOK:   true,
			wantRaw:  `{"sections": []}`,
			wantKind: "object",
		},
		{
			name:     "brackets inside strings",
			input:    `{"content": "uses [brackets] and } braces"} trailing`,
			wantOK:   true,
			wantRaw:  `{"content": "uses [brackets] and } braces"}`,
			wantKind: "object",
		},
		{
			name:     "escaped quote in string",
			input:    `["say \"hi\" ]"]`,
			wantOK:   true,
			wantRaw:  `["say \"hi\" ]"]`,
			wantKind: "array",
		},
		{
			name:   "unterminated",
			input:  `[{"keyword": "Go"`,
			wantOK: false,
		},
		{
			name:   "plain prose",
			input:  "I could not find any keywords.",
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ExtractJSON(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantRaw, result.Raw)
			switch tt.wantKind {
			case "array":
				assert.True(t, result.IsArray())
			case "object":
				assert.True(t, result.IsObject())
			}
		})
	}
}

func TestExtractBalanced(t *testing.T) {
	assert.Equal(t, `{"a": [1, 2]}`, extractBalanced(`{"a": [1, 2]} rest`))
	assert.Equal(t, "", extractBalanced(`{"a": 1`))
	assert.Equal(t, "", extractBalanced(`}{`))
}
