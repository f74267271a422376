package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  config.Model,
	}, nil
}

// Generate generates content with the configured model
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(float32(req.Temperature))
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if req.JSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", &APICallError{Provider: ProviderGemini, Message: "generate content", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Ping fetches the model metadata
func (c *GeminiClient) Ping(ctx context.Context) error {
	if _, err := c.client.GenerativeModel(c.model).Info(ctx); err != nil {
		return &APICallError{Provider: ProviderGemini, Message: "model info", Cause: err}
	}
	return nil
}

// Provider returns ProviderGemini
func (c *GeminiClient) Provider() Provider { return ProviderGemini }

// Model returns the configured model name
func (c *GeminiClient) Model() string { return c.model }

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &ParseError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ParseError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &ParseError{Message: "no text parts in response"}
	}

	return strings.TrimSpace(strings.Join(parts, "")), nil
}
