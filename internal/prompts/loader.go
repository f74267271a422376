// Package prompts holds the model prompt templates. Each template pairs a system
// instruction with a user prompt; both are embedded from tailoring.json.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Template names
const (
	ExtractKeywords     = "extract-keywords"
	TailorResume        = "tailor-resume"
	GenerateSuggestions = "generate-suggestions"
	AnalyzeSections     = "analyze-sections"
)

//go:embed tailoring.json
var tailoringJSON []byte

// placeholder matches {{.Name}} in a template
var placeholder = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

// Template is a system instruction and a user prompt with {{.Name}} placeholders
type Template struct {
	Name   string `json:"-"`
	System string `json:"system"`
	User   string `json:"user"`
}

// MissingDataError reports placeholders that a render call left unfilled
type MissingDataError struct {
	Template string
	Keys     []string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("prompt %s: no value for %s", e.Template, strings.Join(e.Keys, ", "))
}

var (
	loadOnce  sync.Once
	templates map[string]Template
	loadErr   error
)

func load() (map[string]Template, error) {
	loadOnce.Do(func() {
		templates, loadErr = parse(tailoringJSON)
	})
	return templates, loadErr
}

func parse(data []byte) (map[string]Template, error) {
	var parsed map[string]Template
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	for name, t := range parsed {
		if strings.TrimSpace(t.User) == "" {
			return nil, fmt.Errorf("prompt %s has no user prompt", name)
		}
		t.Name = name
		parsed[name] = t
	}
	return parsed, nil
}

// Get returns the named template
func Get(name string) (Template, error) {
	all, err := load()
	if err != nil {
		return Template{}, err
	}
	t, exists := all[name]
	if !exists {
		return Template{}, fmt.Errorf("prompt %q not found", name)
	}
	return t, nil
}

// Names returns the names of all templates, sorted
func Names() ([]string, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Placeholders returns the distinct placeholder names used by the user prompt, in order
func (t Template) Placeholders() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(t.User, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// Render fills the user prompt. Every placeholder needs a value in data; values
// are inserted verbatim and never expanded themselves.
func (t Template) Render(data map[string]string) (string, error) {
	var missing []string
	for _, key := range t.Placeholders() {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "", &MissingDataError{Template: t.Name, Keys: missing}
	}

	return placeholder.ReplaceAllStringFunc(t.User, func(m string) string {
		return data[placeholder.FindStringSubmatch(m)[1]]
	}), nil
}
