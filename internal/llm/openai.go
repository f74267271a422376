package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/openai/openai-go/v3/shared/constant"
)

// OpenAIClient implements Client for the OpenAI chat completions API
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client. SDK retries are disabled; a failed
// call falls back instead of being repeated.
func NewOpenAIClient(config Config) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  config.Model,
	}
}

// Generate sends the request as a chat completion
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       shared.ChatModel(c.model),
		Temperature: openai.Float(req.Temperature),
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &APICallError{Provider: ProviderOpenAI, Message: "chat completion", Cause: err}
	}
	if len(completion.Choices) == 0 {
		return "", &APICallError{Provider: ProviderOpenAI, Message: "no choices in response"}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// Ping retrieves the configured model
func (c *OpenAIClient) Ping(ctx context.Context) error {
	if _, err := c.client.Models.Get(ctx, c.model); err != nil {
		return &APICallError{Provider: ProviderOpenAI, Message: "model lookup", Cause: err}
	}
	return nil
}

// Provider returns ProviderOpenAI
func (c *OpenAIClient) Provider() Provider { return ProviderOpenAI }

// Model returns the configured model name
func (c *OpenAIClient) Model() string { return c.model }

// Close is a no-op; the SDK holds no resources that need releasing
func (c *OpenAIClient) Close() error { return nil }
