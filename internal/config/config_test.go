package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbmapp/sbm-advisor-go/internal/config"
)

func TestEffectiveAdvisorBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		apiKey  string
		want    string
	}{
		{"gemini with key", "gemini", "secret", "gemini"},
		{"gemini without key falls back", "gemini", "", "http"},
		{"explicit http ignores key", "http", "secret", "http"},
		{"http without key", "http", "", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{AdvisorBackend: tt.backend, GeminiAPIKey: tt.apiKey}
			if got := cfg.EffectiveAdvisorBackend(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# comment
export ADVISOR_BACKEND=http
GEMINI_TTS_VOICE="Puck"
MAX_RETRIES=5 # inline comment
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("ADVISOR_BACKEND", "")
	t.Setenv("GEMINI_TTS_VOICE", "")
	t.Setenv("MAX_RETRIES", "")

	if err := config.LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := os.Getenv("ADVISOR_BACKEND"); got != "http" {
		t.Errorf("ADVISOR_BACKEND = %q, want http", got)
	}
	if got := os.Getenv("GEMINI_TTS_VOICE"); got != "Puck" {
		t.Errorf("GEMINI_TTS_VOICE = %q, want Puck", got)
	}
	if got := os.Getenv("MAX_RETRIES"); got != "5" {
		t.Errorf("MAX_RETRIES = %q, want 5", got)
	}
}

func TestLoadDotEnv_EnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("LOG_LEVEL", "warn")
	if err := config.LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("LOG_LEVEL"); got != "warn" {
		t.Errorf("existing env var must win, got %q", got)
	}
}
