package llm

import "context"

// GenerateOptions controls a single generation call. A zero Temperature
// leaves the provider default in place.
type GenerateOptions struct {
	Temperature  float32
	JSONResponse bool
}

// TextGenerator is the outbound boundary to a text-generation provider.
// Implementations return *Error for provider-side failures so callers can
// map them onto the HTTP error taxonomy without inspecting message text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
