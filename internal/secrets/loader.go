// Package secrets resolves credentials given inline or through a file.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotConfigured is returned when a source holds no secret at all
var ErrNotConfigured = errors.New("not configured")

// Source describes how to load a secret value.
type Source struct {
	// Name is used in error messages to give more context about the secret.
	Name string
	// Value is an inline secret value provided via configuration or environment.
	Value string
	// File points to a file containing the secret value. When set it takes
	// precedence over Value.
	File string
}

// Load returns the trimmed secret from src. A source with neither a file nor a
// value yields ErrNotConfigured; an unreadable or empty file is an error of its own.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	file := strings.TrimSpace(src.File)
	if file == "" {
		secret := strings.TrimSpace(src.Value)
		if secret == "" {
			return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
		}
		return secret, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
	}
	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}
	return secret, nil
}

// LoadOptional is Load with an absent secret reported as "" and no error
func LoadOptional(src Source) (string, error) {
	secret, err := Load(src)
	if errors.Is(err, ErrNotConfigured) {
		return "", nil
	}
	return secret, err
}
