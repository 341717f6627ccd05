package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/service"
)

// ============================================================
// AI Concierge - POST /v1/advisor
// ============================================================

func advisorHandler(advisor *service.Advisor, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/advisor")
		defer span.End()

		var req domain.AdviceAPIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		span.SetAttributes(attribute.Int("prompt.length", len(req.Prompt)))

		start := time.Now()
		result, err := advisor.GetAdvice(ctx, req.Prompt)
		latencyMs := time.Since(start).Milliseconds()
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		// Optionally voice the advice in the same request, best effort.
		if req.Speak && !result.Response.Fallback {
			advisor.Speak(ctx, result.Response.Advice)
		}

		resp := domain.AdviceAPIResponse{
			ID:        uuid.New().String(),
			Advice:    result.Response.Advice,
			Fallback:  result.Response.Fallback,
			LatencyMs: latencyMs,
			Timestamp: result.ProcessedAt.Format(time.RFC3339),
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ============================================================
// Speech - POST /v1/advisor/speak
// ============================================================

func speakHandler(advisor *service.Advisor, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/advisor/speak")
		defer span.End()

		var req domain.SpeakRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}

		// Best effort: synthesis failures are absorbed by the service.
		advisor.Speak(ctx, req.Text)
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}

// speakRemindersHandler voices all active reminders concurrently.
func speakRemindersHandler(advisor *service.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/reminders/speak")
		defer span.End()

		spoken := advisor.SpeakReminders(ctx)
		writeJSON(w, http.StatusAccepted, map[string]any{
			"status": "accepted",
			"spoken": spoken,
		})
	}
}

// ============================================================
// Metrics - GET /v1/metrics/advisor
// ============================================================

func advisorMetricsHandler(advisor *service.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, advisor.MetricsSnapshot())
	}
}
