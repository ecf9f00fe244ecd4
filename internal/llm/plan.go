package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"pretexta_backend/pkg/monitoring"
	"pretexta_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	GeminiFlashModel     = "gemini-1.5-flash"
	GeminiProModel       = "gemini-pro"
	ClaudeSonnetModel    = "claude-3-5-sonnet-20240620"
	GroqChatModel        = "llama-3.3-70b-versatile"
	GroqLegacyChatModel  = "llama3-70b-8192"
	fallbackDefaultModel = GeminiFlashModel
)

var defaultModels = map[Provider]string{
	ProviderGemini: GeminiFlashModel,
	ProviderClaude: ClaudeSonnetModel,
}

// ResolveModel picks the configured override, then the provider default,
// then a global fallback.
func ResolveModel(provider Provider, override string) string {
	if m := strings.TrimSpace(override); m != "" {
		return m
	}
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return fallbackDefaultModel
}

// Plan is a provider client plus the ordered models to try with it.
type Plan struct {
	Provider       Provider
	Client         Client
	Candidates     []string
	Temperature    *float64
	AttemptTimeout time.Duration
	SystemAsHuman  func(model string) bool
}

func always(string) bool { return true }
func never(string) bool  { return false }

// legacyGeminiNeedsHumanSystem keeps the historic toggle: only 1.5 models get
// a native system instruction.
func legacyGeminiNeedsHumanSystem(model string) bool {
	return !strings.Contains(model, "1.5")
}

// GenerationPlan returns the pretext generation strategy for provider.
func (c *Clients) GenerationPlan(provider Provider, model string) (*Plan, error) {
	switch provider {
	case ProviderGemini:
		return &Plan{
			Provider: provider,
			Client:   c.Gemini,
			Candidates: Candidates(
				model,
				GeminiFlashModel,
				"models/"+GeminiFlashModel,
				GeminiProModel,
				"models/"+GeminiProModel,
			),
			Temperature:   Temperature(0.7),
			SystemAsHuman: always,
		}, nil
	case ProviderClaude:
		return &Plan{
			Provider:      provider,
			Client:        c.Claude,
			Candidates:    []string{model},
			Temperature:   Temperature(0.7),
			SystemAsHuman: never,
		}, nil
	default:
		return nil, &UnsupportedProviderError{Provider: provider}
	}
}

// ChatPlan returns the roleplay strategy for provider. Unknown providers are
// assumed to hold a Groq key.
func (c *Clients) ChatPlan(provider Provider, attemptTimeout time.Duration) *Plan {
	switch provider {
	case ProviderGroq:
		return &Plan{
			Provider:      provider,
			Client:        c.Groq,
			Candidates:    []string{GroqChatModel},
			Temperature:   Temperature(0.7),
			SystemAsHuman: never,
		}
	case ProviderGemini:
		return &Plan{
			Provider:       provider,
			Client:         c.Gemini,
			Candidates:     []string{GeminiFlashModel, GeminiProModel},
			Temperature:    Temperature(0.8),
			AttemptTimeout: attemptTimeout,
			SystemAsHuman:  legacyGeminiNeedsHumanSystem,
		}
	case ProviderClaude:
		return &Plan{
			Provider:      provider,
			Client:        c.Claude,
			Candidates:    []string{ClaudeSonnetModel},
			SystemAsHuman: never,
		}
	default:
		return &Plan{
			Provider:      provider,
			Client:        c.Groq,
			Candidates:    []string{GroqLegacyChatModel},
			SystemAsHuman: never,
		}
	}
}

// Execute runs the plan's candidates through a FallbackPolicy. Each attempt is
// traced and counted.
func (p *Plan) Execute(ctx context.Context, apiKey string, msgs []Message, log *zap.Logger, label string) (string, []Attempt, error) {
	if log == nil {
		log = zap.NewNop()
	}
	policy := FallbackPolicy{
		Timeout: p.AttemptTimeout,
		Logger:  log.With(zap.String("provider", string(p.Provider))),
		Label:   label,
	}

	return policy.Run(ctx, p.Candidates, func(ctx context.Context, model string) (string, error) {
		ctx, span := tracing.StartSpan(ctx, "llm."+label,
			attribute.String("llm.provider", string(p.Provider)),
			attribute.String("llm.model", model),
		)

		systemAsHuman := p.SystemAsHuman
		if systemAsHuman == nil {
			systemAsHuman = never
		}

		start := time.Now()
		text, err := p.Client.Complete(ctx, Request{
			APIKey:        apiKey,
			Model:         model,
			Messages:      msgs,
			Temperature:   p.Temperature,
			SystemAsHuman: systemAsHuman(model),
		})
		if err != nil && apiKey != "" && strings.Contains(err.Error(), apiKey) {
			err = errors.New(Redact(err.Error(), apiKey))
		}

		monitoring.ObserveLLMAttempt(string(p.Provider), model, err, time.Since(start))
		tracing.EndSpan(span, err)
		return text, err
	})
}
