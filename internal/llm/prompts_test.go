package llm

import (
	"strings"
	"testing"
)

func TestPretextSystemPrompt(t *testing.T) {
	got := PretextSystemPrompt(map[string]interface{}{"target": "finance"})
	if !strings.HasPrefix(got, pretextInstruction+"\n\nContext: {\n  \"target\": \"finance\"\n}") {
		t.Fatalf("prompt = %q", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Fatal("prompt must end with a blank line")
	}
	if !strings.Contains(PretextSystemPrompt(nil), "Context: {}") {
		t.Fatal("nil context renders as an empty object")
	}
}

func TestRoleplaySystemPromptDefaults(t *testing.T) {
	got := RoleplaySystemPrompt(Persona{Name: "Dave from Payroll"})
	for _, want := range []string{"Role: Dave from Payroll", "Goal: Trick the user", "Personality: Manipulative", "Context: Corporate Environment", MarkerAttackSucceeded, MarkerAttackBlocked} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
