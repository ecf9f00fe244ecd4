package llm

import (
	"strings"
	"testing"
	"time"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		provider Provider
		override string
		want     string
	}{
		{ProviderGemini, "gemini-2.0-flash", "gemini-2.0-flash"},
		{ProviderGemini, "", GeminiFlashModel},
		{ProviderClaude, " ", ClaudeSonnetModel},
		{ProviderGroq, "", GeminiFlashModel},
	}
	for _, tt := range tests {
		if got := ResolveModel(tt.provider, tt.override); got != tt.want {
			t.Errorf("ResolveModel(%s, %q) = %q, want %q", tt.provider, tt.override, got, tt.want)
		}
	}
}

func TestGenerationPlanCandidates(t *testing.T) {
	clients := &Clients{}

	plan, err := clients.GenerationPlan(ProviderGemini, GeminiFlashModel)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	want := "gemini-1.5-flash,models/gemini-1.5-flash,gemini-pro,models/gemini-pro"
	if strings.Join(plan.Candidates, ",") != want {
		t.Fatalf("candidates = %v", plan.Candidates)
	}

	if _, err := clients.GenerationPlan(ProviderGroq, "x"); err == nil {
		t.Fatal("groq generation should be unsupported")
	}
}

func TestChatPlanGemini(t *testing.T) {
	plan := (&Clients{}).ChatPlan(ProviderGemini, 15*time.Second)
	if plan.AttemptTimeout != 15*time.Second || *plan.Temperature != 0.8 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.SystemAsHuman(GeminiFlashModel) || !plan.SystemAsHuman(GeminiProModel) {
		t.Fatal("only non 1.5 models fold the system prompt")
	}
}
