package usecase

import (
	"context"
	"io"

	"github.com/kidsmentor/kidsmentor-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
)

// fakeGenerator scripts the provider reply and records calls.
type fakeGenerator struct {
	text string
	err  error

	prompts []string
	opts    []llm.GenerateOptions
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
