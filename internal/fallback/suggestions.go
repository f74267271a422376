package fallback

import (
	"fmt"
	"strings"
)

// maxMissingInSuggestion caps how many missing keywords are named in the first suggestion
const maxMissingInSuggestion = 5

// genericSuggestions apply to any resume
var genericSuggestions = []string{
	"Use action verbs to start bullet points (e.g., 'Developed', 'Implemented', 'Led')",
	"Include specific metrics and quantifiable achievements",
	"Ensure your resume is ATS-friendly with clear section headers",
	"Highlight relevant experience that matches the job requirements",
	"Keep bullet points concise and impactful",
}

// GenericSuggestions returns a copy of the resume-agnostic suggestions
func GenericSuggestions() []string {
	return append([]string(nil), genericSuggestions...)
}

// Suggestions builds the static suggestion list. When keywords are missing, the
// first entry names up to five of them.
func Suggestions(missing []string) []string {
	suggestions := make([]string, 0, len(genericSuggestions)+1)
	if len(missing) > 0 {
		named := missing[:min(len(missing), maxMissingInSuggestion)]
		suggestions = append(suggestions, fmt.Sprintf("Add the following keywords to your resume: %s", strings.Join(named, ", ")))
	}
	return append(suggestions, genericSuggestions...)
}
