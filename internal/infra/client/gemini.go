package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/resilience"
)

// systemInstruction primes the model as the wealth concierge guarding
// locked funds. Kept verbatim across advice calls so responses stay in
// register.
const systemInstruction = `You are a luxury AI Financial Assistant. Your primary goal is preventive guidance and absolute capital preservation of "LOCKED FUNDS".

CRITICAL RULES:
1. LOCKED FUNDS: Purposes like "School Fee", "College Fund", and "Emergency Reserve" are considered SACRED. If a user attempts to withdraw or reallocate from these, issue a HIGH-SEVERITY WARNING.
2. ANALYZE RISK: Explain exactly why the withdrawal is dangerous (e.g., "This $400 withdrawal will cause a tuition default in 3 months, leading to academic disruption").
3. FUTURE IMPACT: Quantify the shortage and the time needed to recover.
4. RECOVERY & STABILIZATION: For emergency situations, provide a step-by-step restoration plan.
5. ALTERNATIVES: Suggest side gigs (Rapido, Swiggy, etc.) or cost-cutting to avoid touching locked funds.

Tone: Sophisticated, authoritative, "Wealth Concierge".
Format: Use clear headings like "RISK ALERT: LOCKED FUND BREACH", "PROJECTED IMPACT", and "RESTORE PROTOCOL".`

const speakPreamble = "Read this financial guidance with a sophisticated, professional, and clear voice: "

const adviceTemperature = 0.6

// GeminiClient talks to the Gemini API for advice text and speech
// synthesis.
type GeminiClient struct {
	client      *genai.Client
	adviceModel string
	ttsModel    string
	ttsVoice    string
	cb          *gobreaker.CircuitBreaker
	cfg         resilience.Config
}

// NewGeminiClient creates a Gemini-backed advisor client.
func NewGeminiClient(ctx context.Context, apiKey, adviceModel, ttsModel, ttsVoice string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) (*GeminiClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:      c,
		adviceModel: adviceModel,
		ttsModel:    ttsModel,
		ttsVoice:    ttsVoice,
		cb:          cb,
		cfg:         cfg,
	}, nil
}

// GetAdvice sends the prompt plus a profile snapshot to the advice model.
func (c *GeminiClient) GetAdvice(ctx context.Context, req *domain.AdvisorRequest) (*domain.AdvisorResponse, error) {
	ctx, span := tracer.Start(ctx, "GeminiClient.GetAdvice")
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", c.adviceModel))

	profileJSON, err := json.Marshal(req.Profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	contents := genai.Text(fmt.Sprintf("User Profile: %s. User Query: %s", profileJSON, req.Prompt))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](adviceTemperature),
	}

	var out *domain.AdvisorResponse

	_, err = c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			resp, err := c.client.Models.GenerateContent(ctx, c.adviceModel, contents, config)
			if err != nil {
				return err
			}

			text := resp.Text()
			if text == "" {
				return fmt.Errorf("empty completion from %s", c.adviceModel)
			}

			out = &domain.AdvisorResponse{
				Advice: text,
				Model:  c.adviceModel,
			}
			if u := resp.UsageMetadata; u != nil {
				out.TokensUsed = domain.TokenUsage{
					PromptTokens:     int(u.PromptTokenCount),
					CompletionTokens: int(u.CandidatesTokenCount),
					TotalTokens:      int(u.TotalTokenCount),
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "gemini", Err: err}
	}

	return out, nil
}

// Speak synthesizes the text with the TTS model. The audio itself is
// discarded after validation; the caller only needs to know synthesis
// worked.
func (c *GeminiClient) Speak(ctx context.Context, text string) error {
	ctx, span := tracer.Start(ctx, "GeminiClient.Speak")
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", c.ttsModel))

	contents := genai.Text(speakPreamble + text)

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.ttsVoice},
			},
		},
	}

	_, err := c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			resp, err := c.client.Models.GenerateContent(ctx, c.ttsModel, contents, config)
			if err != nil {
				return err
			}
			if len(audioBytes(resp)) == 0 {
				return fmt.Errorf("no audio returned from %s", c.ttsModel)
			}
			return nil
		})
	})
	if err != nil {
		return &domain.ErrExternalService{Service: "gemini-tts", Err: err}
	}
	return nil
}

// audioBytes extracts the raw PCM payload from a TTS response.
func audioBytes(resp *genai.GenerateContentResponse) []byte {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
