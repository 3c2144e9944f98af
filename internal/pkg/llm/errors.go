package llm

import "fmt"

type Category string

const (
	CategoryAuth        Category = "auth"
	CategoryRateLimited Category = "rate_limited"
	CategoryInvalid     Category = "invalid_request"
	CategoryUnavailable Category = "unavailable"
)

// Error is a provider failure reduced to a closed set of categories. Kind
// carries the provider's own error type or status name for diagnostics.
type Error struct {
	Category Category
	Kind     string
	Message  string
	cause    error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("llm: %s (%s)", e.Category, e.Kind)
	}
	return fmt.Sprintf("llm: %s (%s): %s", e.Category, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(category Category, kind, message string, cause error) *Error {
	return &Error{Category: category, Kind: kind, Message: message, cause: cause}
}

// categoryForStatus maps an HTTP status reported by a provider client onto
// the taxonomy. Anything unrecognized is treated as a generic failure.
func categoryForStatus(code int) Category {
	switch code {
	case 401, 403:
		return CategoryAuth
	case 429:
		return CategoryRateLimited
	case 400:
		return CategoryInvalid
	default:
		return CategoryUnavailable
	}
}
