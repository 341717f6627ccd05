// Package client holds the outbound adapters for the advisor gateway:
// the Gemini API client and the plain HTTP advisor-service client. Both
// satisfy the same ports so the composition root picks one at startup.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/resilience"
)

var tracer = otel.Tracer("client")

// AdvisorHTTPClient calls a self-hosted advisor service over HTTP. It is
// the drop-in alternative to the Gemini client for deployments that front
// their own model.
type AdvisorHTTPClient struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewAdvisorHTTPClient creates a new AdvisorHTTPClient.
func NewAdvisorHTTPClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *AdvisorHTTPClient {
	return &AdvisorHTTPClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		cfg:        cfg,
	}
}

// GetAdvice posts the prompt and profile snapshot to the advisor service.
func (c *AdvisorHTTPClient) GetAdvice(ctx context.Context, req *domain.AdvisorRequest) (*domain.AdvisorResponse, error) {
	ctx, span := tracer.Start(ctx, "AdvisorHTTPClient.GetAdvice")
	defer span.End()
	span.SetAttributes(attribute.Int("prompt.length", len(req.Prompt)))

	var advResp domain.AdvisorResponse

	_, err := c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			body, err := json.Marshal(req)
			if err != nil {
				return err
			}

			url := fmt.Sprintf("%s/v1/advisor/invoke", c.baseURL)
			httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return err
			}
			httpReq.Header.Set("Content-Type", "application/json")

			resp, err := c.httpClient.Do(httpReq)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("advisor API returned status %d", resp.StatusCode)
			}

			return json.NewDecoder(resp.Body).Decode(&advResp)
		})
		if innerErr != nil {
			return nil, innerErr
		}
		return &advResp, nil
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "advisor", Err: err}
	}

	return &advResp, nil
}

// Speak asks the advisor service to synthesize the text. The service
// returns 204 on success.
func (c *AdvisorHTTPClient) Speak(ctx context.Context, text string) error {
	ctx, span := tracer.Start(ctx, "AdvisorHTTPClient.Speak")
	defer span.End()

	_, err := c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			body, err := json.Marshal(domain.SpeakRequest{Text: text})
			if err != nil {
				return err
			}

			url := fmt.Sprintf("%s/v1/advisor/speak", c.baseURL)
			httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return err
			}
			httpReq.Header.Set("Content-Type", "application/json")

			resp, err := c.httpClient.Do(httpReq)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
				return fmt.Errorf("advisor API returned status %d", resp.StatusCode)
			}
			return nil
		})
	})
	if err != nil {
		return &domain.ErrExternalService{Service: "advisor", Err: err}
	}
	return nil
}
