package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const pretextInstruction = "You are a social engineering pretext generator. Generate realistic, ethically-sound pretexts for security awareness training. Always mark outputs as training material."

// PretextSystemPrompt embeds the caller supplied context into the generator
// instructions.
func PretextSystemPrompt(context interface{}) string {
	return pretextInstruction + "\n\nContext: " + formatContext(context) + "\n\n"
}

func formatContext(context interface{}) string {
	switch c := context.(type) {
	case nil:
		return "{}"
	case string:
		return c
	case map[string]interface{}:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Sprint(c)
		}
		return string(data)
	default:
		return fmt.Sprint(c)
	}
}

// Persona describes the attacker character played in a roleplay chat.
type Persona struct {
	Name    string `json:"name"`
	Goal    string `json:"goal"`
	Style   string `json:"style"`
	Context string `json:"context"`
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// RoleplaySystemPrompt builds the in-character instructions, including the
// control markers the model must emit when the roleplay ends.
func RoleplaySystemPrompt(p Persona) string {
	var b strings.Builder
	b.WriteString("You are a roleplay actor in a cybersecurity simulation.\n")
	fmt.Fprintf(&b, "Role: %s\n", orDefault(p.Name, "Attacker"))
	fmt.Fprintf(&b, "Goal: %s\n", orDefault(p.Goal, "Trick the user"))
	fmt.Fprintf(&b, "Personality: %s\n", orDefault(p.Style, "Manipulative"))
	fmt.Fprintf(&b, "Context: %s\n\n", orDefault(p.Context, "Corporate Environment"))
	b.WriteString("INSTRUCTIONS:\n")
	b.WriteString("1. Respond naturally as your character. Short, realistic messages (whatsapp/email style).\n")
	b.WriteString("2. Do NOT break character.\n")
	b.WriteString("3. If the user successfully spots the attack or refuses securely, react accordingly (e.g. get angry, give up, or try a different angle).\n")
	fmt.Fprintf(&b, "4. If the user FAILS (gives password, clicks link), output a special marker in your text: %s.\n", MarkerAttackSucceeded)
	fmt.Fprintf(&b, "5. If the user permanently BLOCKS the attack, output: %s.\n", MarkerAttackBlocked)
	return b.String()
}
