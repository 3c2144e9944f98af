package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kidsmentor/kidsmentor-be/internal/config"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/llm"
	"github.com/kidsmentor/kidsmentor-be/internal/pkg/validate"
	"github.com/spf13/viper"
)

func main() {
	viperConfig := config.NewViper()

	log := config.NewLogger(viperConfig)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	generator, err := newGenerator(viperConfig)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.Bootstrap(&config.BootstrapConfig{
		Api:       api,
		Config:    viperConfig,
		Log:       log,
		Validator: validator,
		Generator: generator,
	})

	listenAddr := ":" + viperConfig.GetString("api.port")

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}

	log.Info("Shutting down server...")
}

// newGenerator builds the configured provider gateway. A missing API key is
// an error, and main treats it as fatal: the process refuses to serve at all
// rather than fail per request.
func newGenerator(viperConfig *viper.Viper) (llm.TextGenerator, error) {
	switch viperConfig.GetString("llm.provider") {
	case "openai":
		apiKey := viperConfig.GetString("llm.openai.api_key")
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable not set.")
		}
		return llm.NewOpenAIClient(
			apiKey,
			viperConfig.GetString("llm.openai.model"),
			viperConfig.GetString("llm.openai.base_url"),
		), nil
	default:
		apiKey := viperConfig.GetString("llm.gemini.api_key")
		if apiKey == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable not set.")
		}
		client, err := llm.NewGeminiClient(context.Background(), apiKey, viperConfig.GetString("llm.gemini.model"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		return client, nil
	}
}
