package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	if err := config.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	// Provider credentials come from the environment in deployment
	bindings := map[string]string{
		"llm.gemini.api_key": "GEMINI_API_KEY",
		"llm.gemini.model":   "GEMINI_MODEL",
		"llm.openai.api_key": "OPENAI_API_KEY",
	}
	for key, env := range bindings {
		if err := config.BindEnv(key, env); err != nil {
			panic(fmt.Errorf("fatal error binding %s: %w", env, err))
		}
	}

	return config
}
