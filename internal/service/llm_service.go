package service

import (
	"context"
	"errors"
	"pretexta_backend/internal/llm"
	"pretexta_backend/internal/model"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GenerateRequest struct {
	Provider string      `json:"provider"`
	Prompt   string      `json:"prompt"`
	Context  interface{} `json:"context"`
}

type GenerateResult struct {
	GeneratedText string `json:"generated_text"`
	Provider      string `json:"provider"`
}

type ChatRequest struct {
	History []llm.Message `json:"history"`
	Persona llm.Persona   `json:"persona"`
	Message string        `json:"message"`
}

type ChatReply struct {
	Role    llm.Role    `json:"role"`
	Content string      `json:"content"`
	Status  llm.Outcome `json:"status"`
}

// LLMService generates pretexts and plays roleplay attackers using the stored
// provider credentials.
type LLMService struct {
	Configs     LLMConfigStore
	Clients     *llm.Clients
	ChatTimeout time.Duration
	Logger      *zap.Logger
}

func NewLLMService(configs LLMConfigStore, clients *llm.Clients, chatTimeout time.Duration, log *zap.Logger) *LLMService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMService{
		Configs:     configs,
		Clients:     clients,
		ChatTimeout: chatTimeout,
		Logger:      log,
	}
}

func (s *LLMService) enabledConfig(provider, missing string) (*model.LLMConfig, error) {
	cfg, err := s.Configs.FindEnabled(provider)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &llm.ConfigurationError{Message: missing}
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Generate produces a training pretext with the hinted or any enabled
// provider.
func (s *LLMService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	cfg, err := s.enabledConfig(req.Provider, "LLM provider not configured or not enabled. Please configure in Settings.")
	if err != nil {
		return nil, err
	}

	provider := llm.Provider(cfg.Provider)
	override := ""
	if cfg.ModelName != nil {
		override = *cfg.ModelName
	}

	plan, err := s.Clients.GenerationPlan(provider, llm.ResolveModel(provider, override))
	if err != nil {
		return nil, err
	}

	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: llm.PretextSystemPrompt(req.Context)},
		{Role: llm.RoleUser, Content: req.Prompt},
	}

	text, attempts, err := plan.Execute(ctx, cfg.APIKey, msgs, s.Logger, "generate")
	if err != nil {
		s.Logger.Error("pretext generation failed",
			zap.String("provider", cfg.Provider),
			zap.Int("attempts", len(attempts)),
		)
		return nil, llm.NewGenerationFailure(provider, err, cfg.APIKey)
	}

	repaired, _ := llm.RepairJSON(text)
	return &GenerateResult{GeneratedText: repaired, Provider: cfg.Provider}, nil
}

// Converse sends the next participant message to the roleplay attacker and
// reports how the exercise stands afterwards.
func (s *LLMService) Converse(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	cfg, err := s.enabledConfig("", "LLM config missing")
	if err != nil {
		return nil, err
	}

	provider := llm.Provider(cfg.Provider)
	msgs := make([]llm.Message, 0, len(req.History)+2)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: llm.RoleplaySystemPrompt(req.Persona)})
	for _, m := range req.History {
		if m.Role == llm.RoleUser || m.Role == llm.RoleAssistant {
			msgs = append(msgs, m)
		}
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: req.Message})

	plan := s.Clients.ChatPlan(provider, s.ChatTimeout)
	text, attempts, err := plan.Execute(ctx, cfg.APIKey, msgs, s.Logger, "chat")
	if err != nil {
		s.Logger.Error("roleplay chat failed",
			zap.String("provider", cfg.Provider),
			zap.Int("attempts", len(attempts)),
		)
		return nil, llm.NewChatFailure(provider, err, cfg.APIKey)
	}

	content, status := llm.ExtractOutcome(text)
	return &ChatReply{Role: llm.RoleAssistant, Content: content, Status: status}, nil
}
