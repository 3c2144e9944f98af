package usecase

import (
	"errors"
	"strings"
)

// ErrSubjectNotFound reports an unknown subject id in the catalog.
var ErrSubjectNotFound = errors.New("subject not found")

// MissingKeysError reports a model payload that parsed but lacks required
// fields. Keys preserves the required-key order.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return "AI response missing required keys: " + strings.Join(e.Keys, ", ")
}
