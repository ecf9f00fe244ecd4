package llm

import "testing"

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		out   string
		valid bool
	}{
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`, true},
		{"prose around object", "Here you go: {\"a\": 1} enjoy [TRAINING]", `{"a": 1}`, true},
		{"training label", "[TRAINING MATERIAL] Dear employee, reset your password.", "Dear employee, reset your password.", false},
		{"single quotes untouched", "{'a': 1}", "{'a': 1}", false},
		{"no braces", "plain text", "plain text", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, valid := RepairJSON(tt.in)
			if out != tt.out || valid != tt.valid {
				t.Fatalf("RepairJSON(%q) = %q, %v; want %q, %v", tt.in, out, valid, tt.out, tt.valid)
			}
		})
	}
}
