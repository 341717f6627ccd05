package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sbmapp/sbm-advisor-go/internal/config"
	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/handler"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/cache"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/client"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/observability"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/resilience"
	"github.com/sbmapp/sbm-advisor-go/internal/port"
	"github.com/sbmapp/sbm-advisor-go/internal/service"
	"github.com/sbmapp/sbm-advisor-go/internal/session"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("advisor_backend", cfg.AdvisorBackend),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "sbm-advisor")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Session state ---
	sess := session.New()

	// --- Cache ---
	adviceCache := cache.New[*domain.AdvisorResponse](cfg.CacheTTL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("advisor")

	// --- Advisor backend ---
	var caller port.AdvisorCaller
	var speaker port.Speaker

	backend := cfg.EffectiveAdvisorBackend()
	if backend != cfg.AdvisorBackend {
		logger.Warn("no Gemini API key configured, falling back to the HTTP advisor backend")
	}

	switch backend {
	case "http":
		logger.Info("using self-hosted advisor backend",
			zap.String("advisor_api_url", cfg.AdvisorAPIURL),
		)
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		c := client.NewAdvisorHTTPClient(httpClient, cfg.AdvisorAPIURL, cb, resilienceCfg)
		caller, speaker = c, c
	default:
		logger.Info("using Gemini advisor backend",
			zap.String("advice_model", cfg.GeminiModel),
			zap.String("tts_model", cfg.GeminiTTSModel),
		)
		c, err := client.NewGeminiClient(context.Background(),
			cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTTSModel, cfg.GeminiTTSVoice,
			cb, resilienceCfg)
		if err != nil {
			logger.Fatal("failed to create gemini client", zap.Error(err))
		}
		caller, speaker = c, c
	}

	// --- Services ---
	advisorSvc := service.NewAdvisor(caller, speaker, sess, adviceCache, metrics, logger, cfg.SpeakConcurrency)
	budgetSvc := service.NewBudget(sess, advisorSvc, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(budgetSvc, advisorSvc, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
