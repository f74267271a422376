// Package llm provides the model backend clients and the helpers shared by their callers.
// A single Client interface covers OpenAI, a local Ollama server and Google Gemini.
package llm

import (
	"fmt"
	"strings"
	"time"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI chat completions API (or a compatible server)
	ProviderOpenAI Provider = "openai"
	// ProviderOllama is a locally hosted Ollama model server
	ProviderOllama Provider = "ollama"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderNone disables the model backend
	ProviderNone Provider = "none"
)

// Default models and endpoints per provider
const (
	DefaultOpenAIModel = "gpt-4-turbo-preview"
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama2"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTimeout     = 30 * time.Second
)

// placeholderAPIKey ships in example env files and never authenticates
const placeholderAPIKey = "your_openai_api_key_here"

// Config holds the model backend configuration
type Config struct {
	Provider Provider
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint (Ollama server URL, OpenAI-compatible gateway)
	BaseURL string
	Timeout time.Duration
}

// ParseProvider maps a configured provider name to a Provider
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(name))); p {
	case ProviderOpenAI, ProviderOllama, ProviderGemini, ProviderNone:
		return p, nil
	case "":
		return ProviderNone, nil
	default:
		return "", fmt.Errorf("unknown model provider %q (expected openai, ollama, gemini or none)", name)
	}
}

// HasAPIKey reports whether key is usable as a credential
func HasAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != placeholderAPIKey
}

// WithDefaults returns a copy of c with empty fields set to the provider defaults
func (c Config) WithDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	switch c.Provider {
	case ProviderOpenAI:
		if c.Model == "" {
			c.Model = DefaultOpenAIModel
		}
	case ProviderOllama:
		if c.Model == "" {
			c.Model = DefaultOllamaModel
		}
		if c.BaseURL == "" {
			c.BaseURL = DefaultOllamaURL
		}
	case ProviderGemini:
		if c.Model == "" {
			c.Model = DefaultGeminiModel
		}
	}
	return c
}
