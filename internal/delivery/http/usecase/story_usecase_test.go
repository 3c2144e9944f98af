package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kidsmentor/kidsmentor-be/internal/delivery/http/entity"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/extract"
)

func TestGenerateStarters(t *testing.T) {
	gen := &fakeGenerator{text: `{"storyStarters": ["Once upon a time...", "Deep in the forest..."]}`}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	resp, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{})
	if err != nil {
		t.Fatalf("GenerateStarters() error: %v", err)
	}

	want := []string{"Once upon a time...", "Deep in the forest..."}
	if !reflect.DeepEqual(resp.StoryStarters, want) {
		t.Errorf("StoryStarters = %v, want %v", resp.StoryStarters, want)
	}

	if gen.opts[0].Temperature != 0.7 || !gen.opts[0].JSONResponse {
		t.Errorf("generation options = %+v, want temperature 0.7 and JSON response", gen.opts[0])
	}
}

func TestGenerateStartersAppliesDefaults(t *testing.T) {
	gen := &fakeGenerator{text: `{"storyStarters": ["A"]}`}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	if _, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{}); err != nil {
		t.Fatalf("GenerateStarters() error: %v", err)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "ages 3-6") {
		t.Error("prompt missing default age group")
	}
	if !strings.Contains(prompt, "Category: Fantasy") {
		t.Error("prompt missing default category")
	}
}

func TestGenerateStartersAlternateListKey(t *testing.T) {
	gen := &fakeGenerator{text: `{"starters": ["One", "Two", "Three"]}`}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	resp, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{})
	if err != nil {
		t.Fatalf("GenerateStarters() error: %v", err)
	}
	if !reflect.DeepEqual(resp.StoryStarters, []string{"One", "Two", "Three"}) {
		t.Errorf("StoryStarters = %v, want the alternate list", resp.StoryStarters)
	}
}

func TestGenerateStartersCoercesScalars(t *testing.T) {
	gen := &fakeGenerator{text: `{"items": [1, 2.5, true, "done"]}`}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	resp, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{})
	if err != nil {
		t.Fatalf("GenerateStarters() error: %v", err)
	}
	want := []string{"1", "2.5", "true", "done"}
	if !reflect.DeepEqual(resp.StoryStarters, want) {
		t.Errorf("StoryStarters = %v, want stringified scalars %v", resp.StoryStarters, want)
	}
}

func TestGenerateStartersQuotedFallback(t *testing.T) {
	// Broken JSON with four quoted candidates: only the first three survive.
	gen := &fakeGenerator{text: `{oops "One" "Two" "Three" "Four"}`}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	resp, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{})
	if err != nil {
		t.Fatalf("GenerateStarters() error: %v", err)
	}
	if !reflect.DeepEqual(resp.StoryStarters, []string{"One", "Two", "Three"}) {
		t.Errorf("StoryStarters = %v, want first three quoted substrings", resp.StoryStarters)
	}
}

func TestGenerateStartersLineFallback(t *testing.T) {
	gen := &fakeGenerator{text: "{bad\nThe dragon woke up.\nA mouse found a map.\nThe moon smiled.\n}"}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	resp, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{})
	if err != nil {
		t.Fatalf("GenerateStarters() error: %v", err)
	}
	want := []string{"{bad", "The dragon woke up.", "A mouse found a map."}
	if !reflect.DeepEqual(resp.StoryStarters, want) {
		t.Errorf("StoryStarters = %v, want first three non-empty lines", resp.StoryStarters)
	}
}

func TestGenerateStartersNoObject(t *testing.T) {
	gen := &fakeGenerator{text: "no braces at all"}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	_, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{})
	if !errors.Is(err, extract.ErrNoObject) {
		t.Errorf("error = %v, want ErrNoObject", err)
	}
}

func TestGenerateStartersEmptyObject(t *testing.T) {
	gen := &fakeGenerator{text: `{"note": "no lists here"}`}
	uc := NewStoryUsecase(StoryConfig{Generator: gen, Log: testLogger()})

	if _, err := uc.GenerateStarters(context.Background(), entity.StoryRequest{}); err == nil {
		t.Error("expected an error when no list is present")
	}
}
