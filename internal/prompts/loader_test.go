package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tmpl, err := Get(ExtractKeywords)
	require.NoError(t, err)

	assert.Equal(t, ExtractKeywords, tmpl.Name)
	assert.NotEmpty(t, tmpl.System)
	assert.Contains(t, tmpl.User, "{{.JobDescription}}")
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)

	assert.Equal(t, []string{AnalyzeSections, ExtractKeywords, GenerateSuggestions, TailorResume}, names)
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{ExtractKeywords, []string{"JobDescription"}},
		{TailorResume, []string{"JobDescription", "TargetRole", "Resume"}},
		{GenerateSuggestions, []string{"JobDescription", "Resume", "MissingKeywords"}},
		{AnalyzeSections, []string{"Resume"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tmpl.Placeholders())
		})
	}
}

func TestRender(t *testing.T) {
	tmpl, err := Get(TailorResume)
	require.NoError(t, err)

	prompt, err := tmpl.Render(map[string]string{
		"JobDescription": "Go developer",
		"TargetRole":     "Backend Engineer",
		"Resume":         "I write Go",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Go developer")
	assert.Contains(t, prompt, "Target Role: Backend Engineer")
	assert.Contains(t, prompt, "I write Go")
	assert.NotContains(t, prompt, "{{.")
}

func TestRender_ValuesAreNotExpanded(t *testing.T) {
	tmpl := Template{Name: "echo", User: "A: {{.A}} B: {{.B}}"}

	out, err := tmpl.Render(map[string]string{"A": "{{.B}}", "B": "b"})
	require.NoError(t, err)
	assert.Equal(t, "A: {{.B}} B: b", out)
}

func TestRender_MissingData(t *testing.T) {
	tmpl := Template{Name: "greeting", User: "Hello {{.Name}} from {{.Company}}"}

	_, err := tmpl.Render(map[string]string{"Name": "Alice"})

	var missing *MissingDataError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "greeting", missing.Template)
	assert.Equal(t, []string{"Company"}, missing.Keys)
}

func TestParse_Invalid(t *testing.T) {
	_, err := parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = parse([]byte(`{"empty": {"system": "s", "user": "  "}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user prompt")
}
