package llm

import (
	"context"
	"net/http"
	"pretexta_backend/internal/config"
)

// Client performs one completion call and returns the reply text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Clients holds one transport per provider family.
type Clients struct {
	Gemini Client
	Claude Client
	Groq   Client
}

func NewClients(cfg config.LLMConfig) *Clients {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	return &Clients{
		Gemini: NewGeminiClient(cfg.GeminiBaseURL, httpClient),
		Claude: NewClaudeClient(cfg.ClaudeBaseURL, httpClient),
		Groq:   NewOpenAICompatibleClient("groq", cfg.GroqBaseURL, httpClient),
	}
}
