// Package extract recovers a JSON object from unstructured model output.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoObject is returned when no strategy can locate a JSON object.
var ErrNoObject = errors.New("could not extract valid JSON from model response")

// ParseError reports a located slice that failed to parse. Snippet holds a
// bounded prefix of the slice for diagnostics.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON from model response: %v (near %q)", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Strategy locates a candidate JSON object inside free text.
type Strategy func(text string) (string, bool)

var fencedBlockRe = regexp.MustCompile("(?is)```(?:json)?\n?(\\{.*?\\})\n?```")

// FencedBlock matches a triple-backtick code block, optionally tagged json,
// and returns the braces content inside it.
func FencedBlock(text string) (string, bool) {
	m := fencedBlockRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// WholeObject accepts the trimmed text verbatim when it already is a single
// object literal.
func WholeObject(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		return text, true
	}
	return "", false
}

// BraceSpan slices between the first '{' and the last '}' inclusive.
func BraceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return text[start : end+1], true
}

// strategies are attempted in order; the first hit wins.
var strategies = []Strategy{FencedBlock, WholeObject, BraceSpan}

// Object returns the best JSON object candidate found in text, or ErrNoObject.
func Object(text string) (string, error) {
	for _, strategy := range strategies {
		if raw, ok := strategy(text); ok {
			return raw, nil
		}
	}
	return "", ErrNoObject
}

// ParseObject extracts and parses a JSON object from text. It returns
// ErrNoObject when nothing object-like is found and *ParseError when the
// located slice is not valid JSON.
func ParseObject(text string) (map[string]any, error) {
	raw, err := Object(text)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &ParseError{Snippet: snippet(raw), Err: err}
	}
	return data, nil
}

func snippet(s string) string {
	const limit = 100
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
