package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `app:
  name: KidsMentor Backend
api:
  port: 8000
log:
  level: 4
llm:
  provider: gemini
  gemini:
    api_key: ""
    model: gemini-1.5-flash
`

func writeTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
}

func TestNewViper(t *testing.T) {
	writeTestConfig(t)

	config := NewViper()
	if got := config.GetString("app.name"); got != "KidsMentor Backend" {
		t.Errorf("app.name = %q", got)
	}
	if got := config.GetInt("api.port"); got != 8000 {
		t.Errorf("api.port = %d", got)
	}
	if got := config.GetString("llm.provider"); got != "gemini" {
		t.Errorf("llm.provider = %q", got)
	}
}

func TestNewViperEnvOverridesAPIKey(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("GEMINI_API_KEY", "test-key-123")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")

	config := NewViper()
	if got := config.GetString("llm.gemini.api_key"); got != "test-key-123" {
		t.Errorf("llm.gemini.api_key = %q, want env value", got)
	}
	if got := config.GetString("llm.gemini.model"); got != "gemini-2.0-flash" {
		t.Errorf("llm.gemini.model = %q, want env value", got)
	}
}

func TestNewViperMissingConfigPanics(t *testing.T) {
	t.Chdir(t.TempDir())

	defer func() {
		if recover() == nil {
			t.Error("expected panic when config file is absent")
		}
	}()
	NewViper()
}
