package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/handler"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/cache"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/client"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/observability"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/resilience"
	"github.com/sbmapp/sbm-advisor-go/internal/service"
	"github.com/sbmapp/sbm-advisor-go/internal/session"

	"go.uber.org/zap"
)

func buildStack(t *testing.T, advisorURL string) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	cb := resilience.NewCircuitBreaker("integration")
	cfg := resilience.Config{MaxRetries: 1, InitialBackoff: 10 * time.Millisecond, MaxConcurrency: 10}
	httpClient := &http.Client{Timeout: 5 * time.Second}

	advClient := client.NewAdvisorHTTPClient(httpClient, advisorURL, cb, cfg)
	sess := session.New()
	advisor := service.NewAdvisor(
		advClient,
		advClient,
		sess,
		cache.New[*domain.AdvisorResponse](5*time.Minute),
		metrics,
		logger,
		3,
	)
	budget := service.NewBudget(sess, advisor, metrics, logger)

	return handler.NewRouter(budget, advisor, metrics, logger)
}

// TestIntegration_AdviceFlow spins up a mock advisor backend and drives
// a request through router, service, cache and the HTTP client.
func TestIntegration_AdviceFlow(t *testing.T) {
	var upstreamCalls int
	advisorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/advisor/invoke" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		upstreamCalls++

		var req domain.AdvisorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode upstream request: %v", err)
		}
		if req.Profile == nil || req.Profile.Name != "Alex Sterling" {
			t.Errorf("expected profile snapshot in upstream request, got %+v", req.Profile)
		}

		resp := domain.AdvisorResponse{
			Advice: "Your locked reserves are intact. Allocate the surplus to your Investment goal.",
			Model:  "mock-advisor",
			TokensUsed: domain.TokenUsage{
				PromptTokens:     640,
				CompletionTokens: 120,
				TotalTokens:      760,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer advisorServer.Close()

	router := buildStack(t, advisorServer.URL)

	body, _ := json.Marshal(domain.AdviceAPIRequest{Prompt: "How should I allocate this month's surplus?"})
	req := httptest.NewRequest(http.MethodPost, "/v1/advisor", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var result domain.AdviceAPIResponse
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ID == "" {
		t.Error("expected response id to be present")
	}
	if result.Fallback {
		t.Error("expected live advice, got fallback")
	}
	if !strings.Contains(result.Advice, "Investment goal") {
		t.Errorf("unexpected advice: %q", result.Advice)
	}

	// Identical prompt again: served from cache, upstream untouched.
	req2 := httptest.NewRequest(http.MethodPost, "/v1/advisor", bytes.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)

	if rec2.Code != http.StatusOK {
		t.Fatalf("expected 200 on cached request, got %d", rec2.Code)
	}
	if upstreamCalls != 1 {
		t.Errorf("expected 1 upstream call, got %d", upstreamCalls)
	}
}

// TestIntegration_WithdrawalSimulation exercises the risk-aware flow:
// the goal registry builds the prompt, the advisor backend answers it.
func TestIntegration_WithdrawalSimulation(t *testing.T) {
	advisorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.AdvisorRequest
		json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req.Prompt, "School Fee") {
			t.Errorf("expected goal name in prompt, got %q", req.Prompt)
		}
		json.NewEncoder(w).Encode(domain.AdvisorResponse{
			Advice:     "RISK ALERT: this goal is a locked reserve. Withdrawal is strongly discouraged.",
			TokensUsed: domain.TokenUsage{TotalTokens: 500},
		})
	}))
	defer advisorServer.Close()

	router := buildStack(t, advisorServer.URL)

	req := httptest.NewRequest(http.MethodPost, "/v1/goals/s1/simulate-withdrawal", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var report domain.WithdrawalReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if !strings.Contains(report.Advice, "RISK ALERT") {
		t.Errorf("unexpected advice: %q", report.Advice)
	}
	if report.Fallback {
		t.Error("expected live advice")
	}
	if report.Simulation.Amount != 6200 {
		t.Errorf("expected default half-withdrawal of 6200, got %v", report.Simulation.Amount)
	}
}

// TestIntegration_AdvisorDown verifies the fallback path end to end: an
// unreachable backend still yields 200 with the static fallback advice.
func TestIntegration_AdvisorDown(t *testing.T) {
	advisorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer advisorServer.Close()

	router := buildStack(t, advisorServer.URL)

	body, _ := json.Marshal(domain.AdviceAPIRequest{Prompt: "Is my budget healthy?"})
	req := httptest.NewRequest(http.MethodPost, "/v1/advisor", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with fallback, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var result domain.AdviceAPIResponse
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.Fallback {
		t.Error("expected fallback flag to be set")
	}
	if result.Advice != service.FallbackAdvice {
		t.Errorf("expected fallback advice, got %q", result.Advice)
	}

	fmt.Printf("fallback served in degraded mode: %s\n", result.Advice[:30])
}

// TestIntegration_RiskGate submits a blocked transaction through the
// full stack and checks the structured 422 payload.
func TestIntegration_RiskGate(t *testing.T) {
	advisorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.AdvisorResponse{Advice: "ok"})
	}))
	defer advisorServer.Close()

	router := buildStack(t, advisorServer.URL)

	candidate := domain.TransactionCandidate{
		Kind:        "expense",
		Category:    "Health Insurance",
		Amount:      300,
		Description: "Top-up premium",
	}
	body, _ := json.Marshal(candidate)
	req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var blocked struct {
		Error      string                 `json:"error"`
		Blocked    bool                   `json:"blocked"`
		Assessment *domain.RiskAssessment `json:"assessment"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&blocked); err != nil {
		t.Fatalf("failed to decode block response: %v", err)
	}
	if !blocked.Blocked {
		t.Error("expected blocked flag")
	}
	if blocked.Assessment == nil || blocked.Assessment.Rule == "" {
		t.Errorf("expected assessment with rule, got %+v", blocked.Assessment)
	}
}
