package service

import (
	"errors"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"testing"
)

func TestLLMConfigListMasksCredentials(t *testing.T) {
	store := newFakeLLMConfigStore(
		model.LLMConfig{Provider: "gemini", APIKey: "AIza-secret", Enabled: true},
		model.LLMConfig{Provider: "claude", APIKey: ""},
	)
	svc := NewLLMConfigService(store)

	configs, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(configs) != 1 {
		t.Fatalf("expected empty credentials to be excluded, got %d configs", len(configs))
	}
	if configs[0].APIKey != model.MaskedAPIKey {
		t.Fatalf("api_key = %q, want mask", configs[0].APIKey)
	}
	if store.configs["gemini"].APIKey != "AIza-secret" {
		t.Fatal("masking must not touch the stored value")
	}
}

func TestLLMConfigSaveEmptyKeyDeletes(t *testing.T) {
	store := newFakeLLMConfigStore(model.LLMConfig{Provider: "groq", APIKey: "gsk", Enabled: true})
	svc := NewLLMConfigService(store)

	deleted, err := svc.Save(&model.LLMConfig{Provider: "groq"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete")
	}
	if _, ok := store.configs["groq"]; ok {
		t.Fatal("config still stored")
	}
}

func TestLLMConfigSaveUpserts(t *testing.T) {
	store := newFakeLLMConfigStore()
	svc := NewLLMConfigService(store)

	deleted, err := svc.Save(&model.LLMConfig{Provider: "claude", APIKey: "sk-ant", Enabled: true})
	if err != nil || deleted {
		t.Fatalf("save: deleted=%v err=%v", deleted, err)
	}
	stored := store.configs["claude"]
	if stored.ID == "" || stored.UpdatedAt.IsZero() || stored.RateLimit != 100 {
		t.Fatalf("defaults not applied: %+v", stored)
	}
}

func TestLLMConfigSaveRejectsUnknownProvider(t *testing.T) {
	svc := NewLLMConfigService(newFakeLLMConfigStore())
	if _, err := svc.Save(&model.LLMConfig{Provider: "skynet", APIKey: "x"}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
