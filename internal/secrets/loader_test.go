package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecret(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_InlineValue(t *testing.T) {
	secret, err := Load(Source{Name: "openai api key", Value: "  sk-test \n"})
	require.NoError(t, err)
	assert.Equal(t, "sk-test", secret)
}

func TestLoad_FileTakesPrecedence(t *testing.T) {
	path := writeSecret(t, "sk-from-file\n")

	secret, err := Load(Source{Name: "openai api key", Value: "sk-inline", File: path})
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", secret)
}

func TestLoad_NotConfigured(t *testing.T) {
	_, err := Load(Source{Name: "gemini api key", Value: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Equal(t, "gemini api key: not configured", err.Error())

	_, err = Load(Source{})
	assert.Equal(t, "secret: not configured", err.Error())
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(Source{Name: "key", File: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConfigured))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(Source{Name: "key", File: writeSecret(t, " \n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestLoadOptional(t *testing.T) {
	secret, err := LoadOptional(Source{Name: "key"})
	require.NoError(t, err)
	assert.Empty(t, secret)

	secret, err = LoadOptional(Source{Name: "key", Value: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", secret)

	_, err = LoadOptional(Source{Name: "key", File: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
