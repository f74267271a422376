package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OllamaClient implements Client for a local Ollama server
type OllamaClient struct {
	http  *resty.Client
	model string
}

// NewOllamaClient creates a new Ollama client
func NewOllamaClient(config Config) *OllamaClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(config.BaseURL, "/")).
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json")

	return &OllamaClient{
		http:  client,
		model: config.Model,
	}
}

// Generate calls /api/generate without streaming
func (c *OllamaClient) Generate(ctx context.Context, req Request) (string, error) {
	body := map[string]interface{}{
		"model":  c.model,
		"prompt": req.Prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": req.Temperature,
		},
	}
	if req.System != "" {
		body["system"] = req.System
	}
	if req.JSON {
		body["format"] = "json"
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/api/generate")
	if err != nil {
		return "", &APICallError{Provider: ProviderOllama, Message: "generate request", Cause: err}
	}
	if resp.IsError() {
		return "", &APICallError{
			Provider: ProviderOllama,
			Message:  fmt.Sprintf("generate returned status %d: %s", resp.StatusCode(), ollamaErrorMessage(resp.String())),
		}
	}

	result := gjson.Get(resp.String(), "response")
	if !result.Exists() {
		return "", &ParseError{Message: "ollama response has no \"response\" field"}
	}
	return strings.TrimSpace(result.String()), nil
}

// Ping lists the installed models
func (c *OllamaClient) Ping(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/tags")
	if err != nil {
		return &APICallError{Provider: ProviderOllama, Message: "list models", Cause: err}
	}
	if resp.IsError() {
		return &APICallError{Provider: ProviderOllama, Message: fmt.Sprintf("list models returned status %d", resp.StatusCode())}
	}
	return nil
}

// Provider returns ProviderOllama
func (c *OllamaClient) Provider() Provider { return ProviderOllama }

// Model returns the configured model name
func (c *OllamaClient) Model() string { return c.model }

// Close is a no-op
func (c *OllamaClient) Close() error { return nil }

func ollamaErrorMessage(body string) string {
	if msg := gjson.Get(body, "error"); msg.Exists() {
		return msg.String()
	}
	return strings.TrimSpace(body)
}
