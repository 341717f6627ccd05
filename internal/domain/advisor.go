package domain

import "time"

// ============================================================
// AI Advisor
// ============================================================

// AdvisorRequest is sent to the generative-AI advisor service.
type AdvisorRequest struct {
	Prompt  string       `json:"prompt"`
	Profile *UserProfile `json:"profile"`
}

// AdvisorResponse holds the advisor's reply.
type AdvisorResponse struct {
	Advice     string     `json:"advice"`
	Model      string     `json:"model,omitempty"`
	Fallback   bool       `json:"fallback,omitempty"`
	TokensUsed TokenUsage `json:"tokens_used"`
}

// TokenUsage tracks LLM token consumption for cost monitoring.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// AdviceAPIRequest is the body for POST /v1/advisor.
type AdviceAPIRequest struct {
	Prompt string `json:"prompt"`
	Speak  bool   `json:"speak,omitempty"`
}

// AdviceAPIResponse is the final response from the advisor endpoint.
type AdviceAPIResponse struct {
	ID        string `json:"id"`
	Advice    string `json:"advice"`
	Fallback  bool   `json:"fallback,omitempty"`
	LatencyMs int64  `json:"latencyMs"`
	Timestamp string `json:"timestamp"`
}

// SpeakRequest is the body for POST /v1/advisor/speak.
type SpeakRequest struct {
	Text string `json:"text"`
}

// AdvisorMetrics is returned by GET /v1/metrics/advisor.
type AdvisorMetrics struct {
	TotalRequests       int64   `json:"totalRequests"`
	ErrorRate           float64 `json:"errorRate"`
	FallbackRate        float64 `json:"fallbackRate"`
	AvgTokensPerRequest float64 `json:"avgTokensPerRequest"`
	CacheHitRate        float64 `json:"cacheHitRate"`
	RiskBlocks          int64   `json:"riskBlocks"`
	Period              string  `json:"period"`
}

// InternalAdviceResult is the service-level result before mapping to the
// API shape.
type InternalAdviceResult struct {
	Prompt      string
	Response    *AdvisorResponse
	ProcessedAt time.Time
}
