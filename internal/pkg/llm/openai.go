package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient targets any OpenAI-compatible completion endpoint. It exists
// so the service can point at alternative providers without touching the
// handlers or usecases.
type OpenAIClient struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewOpenAIClient(apiKey string, model string, baseURL string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &OpenAIClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if c.client == nil {
		return "", newError(CategoryUnavailable, "NotConfigured", "openai client not initialized", nil)
	}

	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: opts.Temperature,
	}
	if opts.JSONResponse {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", newError(CategoryUnavailable, "EmptyResponse", "provider returned no choices", nil)
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", newError(CategoryUnavailable, "EmptyResponse", "provider returned empty response", nil)
	}

	return text, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return newError(categoryForStatus(apiErr.HTTPStatusCode), apiErr.Type, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return newError(categoryForStatus(reqErr.HTTPStatusCode), fmt.Sprintf("HTTP %d", reqErr.HTTPStatusCode), reqErr.Error(), err)
	}

	return newError(CategoryUnavailable, "TransportError", err.Error(), err)
}
