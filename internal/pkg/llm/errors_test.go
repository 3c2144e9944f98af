package llm

import (
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func TestCategoryForStatus(t *testing.T) {
	tests := []struct {
		code int
		want Category
	}{
		{401, CategoryAuth},
		{403, CategoryAuth},
		{429, CategoryRateLimited},
		{400, CategoryInvalid},
		{500, CategoryUnavailable},
		{503, CategoryUnavailable},
		{0, CategoryUnavailable},
	}

	for _, tc := range tests {
		if got := categoryForStatus(tc.code); got != tc.want {
			t.Errorf("categoryForStatus(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestClassifyGeminiError(t *testing.T) {
	apiErr := genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}

	var provErr *Error
	if !errors.As(classifyGeminiError(apiErr), &provErr) {
		t.Fatal("classifyGeminiError() did not return *Error")
	}
	if provErr.Category != CategoryRateLimited {
		t.Errorf("Category = %q, want %q", provErr.Category, CategoryRateLimited)
	}
	if provErr.Kind != "RESOURCE_EXHAUSTED" {
		t.Errorf("Kind = %q, want provider status", provErr.Kind)
	}
}

func TestClassifyGeminiErrorTransport(t *testing.T) {
	var provErr *Error
	if !errors.As(classifyGeminiError(fmt.Errorf("connection refused")), &provErr) {
		t.Fatal("classifyGeminiError() did not return *Error")
	}
	if provErr.Category != CategoryUnavailable {
		t.Errorf("Category = %q, want %q", provErr.Category, CategoryUnavailable)
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"api auth", &openai.APIError{HTTPStatusCode: 401, Type: "invalid_api_key"}, CategoryAuth},
		{"api invalid", &openai.APIError{HTTPStatusCode: 400, Type: "invalid_request_error"}, CategoryInvalid},
		{"request error", &openai.RequestError{HTTPStatusCode: 429, Err: errors.New("slow down")}, CategoryRateLimited},
		{"transport", errors.New("dial tcp: timeout"), CategoryUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var provErr *Error
			if !errors.As(classifyOpenAIError(tc.err), &provErr) {
				t.Fatal("classifyOpenAIError() did not return *Error")
			}
			if provErr.Category != tc.want {
				t.Errorf("Category = %q, want %q", provErr.Category, tc.want)
			}
		})
	}
}
