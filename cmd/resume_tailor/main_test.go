package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

// execute runs the CLI in-process with the model backend disabled
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "RESUME_TAILOR_BACKEND_PROVIDER"} {
		t.Setenv(name, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--provider", "none"))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestAnalyzeCommand(t *testing.T) {
	resume := writeFile(t, "resume.txt", "Jane Doe\nSkills\nPython developer\n")
	job := writeFile(t, "job.txt", "We need Python and Docker")

	out, err := execute(t, "analyze", "--resume", resume, "--job", job, "--role", "Backend Engineer")
	require.NoError(t, err)

	var resp types.AnalysisResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	assert.Equal(t, map[string]int{"python": 1}, resp.KeywordMatches)
	assert.Equal(t, []string{"docker"}, resp.MissingKeywords)
	assert.InDelta(t, 0.5, resp.ConfidenceScore, 1e-9)
	assert.Equal(t, "Jane Doe\nSkills\nPython developer", resp.TailoredResume)
}

func TestAnalyzeCommand_Detailed(t *testing.T) {
	resume := writeFile(t, "resume.txt", "Jane Doe\nExperience\nBuilt Python services\n")
	job := writeFile(t, "job.txt", "Python and Kafka")

	out, err := execute(t, "analyze", "--resume", resume, "--job", job, "--detailed")
	require.NoError(t, err)

	var resp types.DetailedAnalysisResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Len(t, resp.Sections, 2)
	assert.Equal(t, "Experience", resp.Sections[1].SectionName)
	assert.Len(t, resp.KeywordAnalysis, 2)
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	job := writeFile(t, "job.txt", "Python")

	_, err := execute(t, "analyze", "--job", job)
	assert.ErrorContains(t, err, "resume")

	_, err = execute(t, "analyze", "--resume", writeFile(t, "resume.rtf", "Python"), "--job", job)
	assert.ErrorContains(t, err, "unsupported file format")

	_, err = execute(t, "analyze", "--resume", filepath.Join(t.TempDir(), "missing.txt"), "--job", job)
	assert.ErrorContains(t, err, "failed to read resume file")
}

func TestKeywordsCommand(t *testing.T) {
	job := writeFile(t, "job.txt", "Looking for Kubernetes and leadership")

	out, err := execute(t, "keywords", "--job", job)
	require.NoError(t, err)

	var resp types.KeywordsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Len(t, resp.Keywords, 2)
	assert.Equal(t, "kubernetes", resp.Keywords[0].Keyword)
	assert.Equal(t, types.CategorySoftSkill, resp.Keywords[1].Category)

	_, err = execute(t, "keywords", "--job", writeFile(t, "blank.txt", "  \n"))
	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
