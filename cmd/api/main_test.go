package main

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestNewGeneratorMissingGeminiKey(t *testing.T) {
	config := viper.New()
	config.Set("llm.provider", "gemini")

	gen, err := newGenerator(config)
	if err == nil {
		t.Fatal("expected error for empty gemini api key")
	}
	if gen != nil {
		t.Error("generator must be nil on error")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("error = %q, want mention of GEMINI_API_KEY", err)
	}
}

func TestNewGeneratorMissingOpenAIKey(t *testing.T) {
	config := viper.New()
	config.Set("llm.provider", "openai")

	gen, err := newGenerator(config)
	if err == nil {
		t.Fatal("expected error for empty openai api key")
	}
	if gen != nil {
		t.Error("generator must be nil on error")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error = %q, want mention of OPENAI_API_KEY", err)
	}
}

func TestNewGeneratorOpenAI(t *testing.T) {
	config := viper.New()
	config.Set("llm.provider", "openai")
	config.Set("llm.openai.api_key", "test-key")

	gen, err := newGenerator(config)
	if err != nil {
		t.Fatalf("newGenerator() error: %v", err)
	}
	if gen == nil {
		t.Fatal("expected a generator")
	}
}
