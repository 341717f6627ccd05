package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
)

// Metrics holds all Prometheus metrics for the SBM backend.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	externalErrors  *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	tokensUsed      *prometheus.CounterVec
	advisorTotal    *prometheus.CounterVec
	riskBlocks      *prometheus.CounterVec
	ledgerEvents    *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sbm_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbm_external_errors_total",
				Help: "Total errors from external services.",
			},
			[]string{"service"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbm_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbm_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		tokensUsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbm_llm_tokens_total",
				Help: "Total LLM tokens consumed by the advisor.",
			},
			[]string{"type"},
		),
		advisorTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbm_advisor_requests_total",
				Help: "Total advisor requests by outcome.",
			},
			[]string{"outcome"},
		),
		riskBlocks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbm_risk_blocks_total",
				Help: "Transactions blocked by the risk classifier, by rule.",
			},
			[]string{"rule"},
		),
		ledgerEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbm_ledger_events_total",
				Help: "Transactions appended to the ledger, by kind.",
			},
			[]string{"kind"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// RecordTokens records prompt and completion token usage.
func (m *Metrics) RecordTokens(prompt, completion int) {
	m.tokensUsed.WithLabelValues("prompt").Add(float64(prompt))
	m.tokensUsed.WithLabelValues("completion").Add(float64(completion))
}

// IncrAdvisor increments the advisor request counter with an outcome
// label: success, error or fallback.
func (m *Metrics) IncrAdvisor(outcome string) {
	m.advisorTotal.WithLabelValues(outcome).Inc()
}

// IncrRiskBlock counts a transaction rejected by the named risk rule.
func (m *Metrics) IncrRiskBlock(rule string) {
	m.riskBlocks.WithLabelValues(rule).Inc()
}

// IncrLedgerEvent counts an appended transaction by kind.
func (m *Metrics) IncrLedgerEvent(kind string) {
	m.ledgerEvents.WithLabelValues(kind).Inc()
}

// GetAdvisorSnapshot returns a snapshot of advisor-related metrics suitable
// for the GET /v1/metrics/advisor endpoint.
func (m *Metrics) GetAdvisorSnapshot() *domain.AdvisorMetrics {
	// Prometheus counters expose cumulative values.
	promptTokens := getCounterValue(m.tokensUsed, "prompt")
	completionTokens := getCounterValue(m.tokensUsed, "completion")

	successes := getCounterValue(m.advisorTotal, "success")
	errorCount := getCounterValue(m.advisorTotal, "error")
	fallbacks := getCounterValue(m.advisorTotal, "fallback")
	totalRequests := successes + errorCount + fallbacks

	cacheHits := getCounterValue(m.cacheHits, "advice")
	cacheMisses := getCounterValue(m.cacheMisses, "advice")

	riskBlocks := float64(0)
	for _, rule := range []string{"liquidity_drain", "academic_reserve", "liability_reallocation", "medical_safety_net"} {
		riskBlocks += getCounterValue(m.riskBlocks, rule)
	}

	totalTokens := promptTokens + completionTokens
	avgTokens := float64(0)
	errorRate := float64(0)
	fallbackRate := float64(0)
	cacheHitRate := float64(0)

	if totalRequests > 0 {
		avgTokens = totalTokens / totalRequests
		errorRate = errorCount / totalRequests
		fallbackRate = fallbacks / totalRequests
	}
	if cacheHits+cacheMisses > 0 {
		cacheHitRate = cacheHits / (cacheHits + cacheMisses)
	}

	return &domain.AdvisorMetrics{
		TotalRequests:       int64(totalRequests),
		ErrorRate:           errorRate,
		FallbackRate:        fallbackRate,
		AvgTokensPerRequest: avgTokens,
		CacheHitRate:        cacheHitRate,
		RiskBlocks:          int64(riskBlocks),
		Period:              "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
