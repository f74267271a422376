package llm

import (
	"context"
	"fmt"
)

// Request is a single prompt sent to a model
type Request struct {
	// System is an optional system instruction
	System string
	Prompt string
	// Temperature is passed through to the provider
	Temperature float64
	// JSON asks the provider for a JSON object response where it supports that
	JSON bool
}

// Client is an abstraction over LLM providers
type Client interface {
	// Generate returns the model's text response to a request
	Generate(ctx context.Context, req Request) (string, error)
	// Ping checks that the provider is reachable and the model is usable
	Ping(ctx context.Context) error
	// Provider returns the provider name
	Provider() Provider
	// Model returns the configured model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration.
// It returns ErrDisabled when the provider is none or a required API key is absent.
func NewClient(ctx context.Context, config Config) (Client, error) {
	config = config.WithDefaults()

	switch config.Provider {
	case ProviderOpenAI:
		if !HasAPIKey(config.APIKey) {
			return nil, fmt.Errorf("openai: no API key: %w", ErrDisabled)
		}
		return NewOpenAIClient(config), nil
	case ProviderOllama:
		return NewOllamaClient(config), nil
	case ProviderGemini:
		if !HasAPIKey(config.APIKey) {
			return nil, fmt.Errorf("gemini: no API key: %w", ErrDisabled)
		}
		return NewGeminiClient(ctx, config)
	case ProviderNone, "":
		return nil, ErrDisabled
	default:
		return nil, fmt.Errorf("unknown model provider %q", config.Provider)
	}
}
