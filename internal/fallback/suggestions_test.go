package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestions_NothingMissing(t *testing.T) {
	suggestions := Suggestions(nil)
	assert.Equal(t, genericSuggestions, suggestions)
}

func TestSuggestions_MissingKeywords(t *testing.T) {
	suggestions := Suggestions([]string{"Java", "Go"})

	require.Len(t, suggestions, 6)
	assert.Equal(t, "Add the following keywords to your resume: Java, Go", suggestions[0])
	assert.Equal(t, genericSuggestions, suggestions[1:])
}

func TestSuggestions_NamesAtMostFive(t *testing.T) {
	suggestions := Suggestions([]string{"a", "b", "c", "d", "e", "f", "g"})
	assert.Equal(t, "Add the following keywords to your resume: a, b, c, d, e", suggestions[0])
}

func TestGenericSuggestions_ReturnsCopy(t *testing.T) {
	copied := GenericSuggestions()
	copied[0] = "changed"
	assert.NotEqual(t, "changed", genericSuggestions[0])
}
