package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/observability"
	"github.com/sbmapp/sbm-advisor-go/internal/port"
	"github.com/sbmapp/sbm-advisor-go/internal/session"
)

var tracer = otel.Tracer("service/advisor")

// FallbackAdvice is returned when the advisor backend is unreachable.
// The dashboard treats it as regular advice flagged fallback, so the
// feature degrades instead of erroring.
const FallbackAdvice = "The AI Concierge is temporarily unavailable. Your locked reserves remain protected. Please retry shortly."

// Advisor fronts the generative advisor: caching, fallback, speech and
// the reminder broadcast.
type Advisor struct {
	caller  port.AdvisorCaller
	speaker port.Speaker
	sess    *session.Session
	cache   port.Cache[*domain.AdvisorResponse]
	metrics *observability.Metrics
	logger  *zap.Logger

	speakConcurrency int
}

// NewAdvisor creates the advisor service with all dependencies injected.
func NewAdvisor(
	caller port.AdvisorCaller,
	speaker port.Speaker,
	sess *session.Session,
	cache port.Cache[*domain.AdvisorResponse],
	metrics *observability.Metrics,
	logger *zap.Logger,
	speakConcurrency int,
) *Advisor {
	if speakConcurrency <= 0 {
		speakConcurrency = 3
	}
	return &Advisor{
		caller:           caller,
		speaker:          speaker,
		sess:             sess,
		cache:            cache,
		metrics:          metrics,
		logger:           logger,
		speakConcurrency: speakConcurrency,
	}
}

// GetAdvice resolves a prompt to advice text. Identical prompts within
// the cache TTL are served from cache. Backend failures degrade to the
// static fallback rather than an error.
func (a *Advisor) GetAdvice(ctx context.Context, prompt string) (*domain.InternalAdviceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if prompt == "" {
		return nil, &domain.ErrValidation{Field: "prompt", Message: "prompt is required"}
	}

	ctx, span := tracer.Start(ctx, "Advisor.GetAdvice")
	defer span.End()
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	start := time.Now()
	defer func() {
		a.metrics.RecordRequestDuration("advisor", time.Since(start))
	}()

	cacheKey := adviceCacheKey(prompt)
	if cached, ok := a.cache.Get(cacheKey); ok {
		a.metrics.IncrCacheHit("advice")
		a.metrics.IncrAdvisor("success")
		return &domain.InternalAdviceResult{
			Prompt:      prompt,
			Response:    cached,
			ProcessedAt: time.Now(),
		}, nil
	}
	a.metrics.IncrCacheMiss("advice")

	profile := a.sess.Profile()
	resp, err := a.caller.GetAdvice(ctx, &domain.AdvisorRequest{
		Prompt:  prompt,
		Profile: &profile,
	})
	if err != nil {
		var extErr *domain.ErrExternalService
		if errors.As(err, &extErr) {
			a.logger.Warn("advisor backend failed, serving fallback",
				zap.String("service", extErr.Service),
				zap.Error(err),
			)
			a.metrics.IncrExternalError(extErr.Service)
			a.metrics.IncrAdvisor("fallback")
			return &domain.InternalAdviceResult{
				Prompt:      prompt,
				Response:    &domain.AdvisorResponse{Advice: FallbackAdvice, Fallback: true},
				ProcessedAt: time.Now(),
			}, nil
		}
		a.metrics.IncrAdvisor("error")
		return nil, err
	}

	a.metrics.RecordTokens(resp.TokensUsed.PromptTokens, resp.TokensUsed.CompletionTokens)
	a.metrics.IncrAdvisor("success")
	a.cache.Set(cacheKey, resp)

	return &domain.InternalAdviceResult{
		Prompt:      prompt,
		Response:    resp,
		ProcessedAt: time.Now(),
	}, nil
}

// Speak synthesizes the text best-effort: failures are logged and
// absorbed so callers never surface a speech error to the dashboard.
func (a *Advisor) Speak(ctx context.Context, text string) {
	ctx, span := tracer.Start(ctx, "Advisor.Speak")
	defer span.End()

	if text == "" {
		return
	}
	if err := a.speaker.Speak(ctx, text); err != nil {
		a.logger.Warn("speech synthesis failed",
			zap.Int("text_length", len(text)),
			zap.Error(err),
		)
		a.metrics.IncrExternalError("tts")
	}
}

// SpeakReminders voices every active goal reminder concurrently,
// bounded by the configured concurrency. Individual failures are
// absorbed; the count of successful syntheses is returned.
func (a *Advisor) SpeakReminders(ctx context.Context) int {
	ctx, span := tracer.Start(ctx, "Advisor.SpeakReminders")
	defer span.End()

	reminders := a.sess.Goals.Reminders(a.sess.Currency())
	span.SetAttributes(attribute.Int("reminder.count", len(reminders)))

	var (
		g, gCtx = errgroup.WithContext(ctx)
		spoken  = make([]bool, len(reminders))
	)
	g.SetLimit(a.speakConcurrency)

	for i, rem := range reminders {
		g.Go(func() error {
			if err := a.speaker.Speak(gCtx, rem.Message); err != nil {
				a.logger.Warn("reminder speech failed",
					zap.String("goal_id", rem.GoalID),
					zap.Error(err),
				)
				a.metrics.IncrExternalError("tts")
				return nil
			}
			spoken[i] = true
			return nil
		})
	}
	g.Wait()

	n := 0
	for _, ok := range spoken {
		if ok {
			n++
		}
	}
	return n
}

// MetricsSnapshot exposes the advisor counters for the metrics endpoint.
func (a *Advisor) MetricsSnapshot() *domain.AdvisorMetrics {
	return a.metrics.GetAdvisorSnapshot()
}

// adviceCacheKey hashes the prompt so arbitrarily long prompts key the
// cache uniformly.
func adviceCacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "advice:" + hex.EncodeToString(sum[:8])
}
