package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient talks to the Gemini API through the official SDK.
type GeminiClient struct {
	Model  string
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		Model:  model,
		client: client,
	}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if c.client == nil {
		return "", newError(CategoryUnavailable, "NotConfigured", "gemini client not initialized", nil)
	}

	config := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		config.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.JSONResponse {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.Model, genai.Text(prompt), config)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	text := resp.Text()
	if text == "" {
		return "", newError(CategoryUnavailable, "EmptyResponse", "gemini returned empty response", nil)
	}

	return text, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return newError(categoryForStatus(apiErr.Code), apiErr.Status, apiErr.Message, err)
	}
	return newError(CategoryUnavailable, "TransportError", err.Error(), err)
}
