package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// Advisor backend selection: "gemini" or "http".
	AdvisorBackend string

	// Gemini
	GeminiAPIKey   string
	GeminiModel    string
	GeminiTTSModel string
	GeminiTTSVoice string

	// Self-hosted advisor service (AdvisorBackend=http)
	AdvisorAPIURL string

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxRetries       int
	InitialBackoff   time.Duration
	MaxBackoff       time.Duration
	MaxConcurrency   int
	SpeakConcurrency int

	// Cache
	CacheTTL time.Duration

	// Observability
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AdvisorBackend: getEnv("ADVISOR_BACKEND", "gemini"),

		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiTTSModel: getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		GeminiTTSVoice: getEnv("GEMINI_TTS_VOICE", "Kore"),

		AdvisorAPIURL: getEnv("ADVISOR_API_URL", "http://localhost:8090"),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),

		MaxRetries:       getEnvInt("MAX_RETRIES", 3),
		InitialBackoff:   getEnvDuration("INITIAL_BACKOFF", 100*time.Millisecond),
		MaxBackoff:       getEnvDuration("MAX_BACKOFF", 2*time.Second),
		MaxConcurrency:   getEnvInt("MAX_CONCURRENCY", 50),
		SpeakConcurrency: getEnvInt("SPEAK_CONCURRENCY", 3),

		CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

// EffectiveAdvisorBackend resolves the advisor backend to wire. The
// Gemini backend needs an API key; without one the self-hosted HTTP
// backend is used so a bare local run still starts.
func (c *Config) EffectiveAdvisorBackend() string {
	if c.AdvisorBackend == "http" {
		return "http"
	}
	if c.GeminiAPIKey == "" {
		return "http"
	}
	return "gemini"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
