package service

import (
	"pretexta_backend/internal/llm"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"time"
)

const (
	llmConfigListLimit = 100
	defaultRateLimit   = 100
)

var knownProviders = map[llm.Provider]bool{
	llm.ProviderOpenAI:  true,
	llm.ProviderGemini:  true,
	llm.ProviderClaude:  true,
	llm.ProviderGroq:    true,
	llm.ProviderGeneric: true,
}

type LLMConfigService struct {
	Configs LLMConfigStore
	Now     func() time.Time
}

func NewLLMConfigService(configs LLMConfigStore) *LLMConfigService {
	return &LLMConfigService{
		Configs: configs,
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

// List returns stored configs with their credentials masked. Configs without
// a credential are omitted.
func (s *LLMConfigService) List() ([]model.LLMConfig, error) {
	configs, err := s.Configs.FindAll(llmConfigListLimit)
	if err != nil {
		return nil, err
	}

	active := make([]model.LLMConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		cfg.APIKey = model.MaskedAPIKey
		active = append(active, cfg)
	}
	return active, nil
}

// Save upserts the provider's config, or removes it when the credential is
// empty. It reports whether the config was deleted.
func (s *LLMConfigService) Save(cfg *model.LLMConfig) (bool, error) {
	if !knownProviders[llm.Provider(cfg.Provider)] {
		return false, &util.ValidationError{Field: "provider", Message: "unknown provider " + cfg.Provider}
	}

	if cfg.APIKey == "" {
		return true, s.Configs.DeleteByProvider(cfg.Provider)
	}

	if cfg.ID == "" {
		cfg.ID = model.GenerateUUID()
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaultRateLimit
	}
	cfg.UpdatedAt = s.Now()

	return false, s.Configs.Upsert(cfg)
}
