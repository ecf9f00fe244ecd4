package llm

import "strings"

type Provider string

const (
	ProviderOpenAI  Provider = "openai"
	ProviderGemini  Provider = "gemini"
	ProviderClaude  Provider = "claude"
	ProviderGroq    Provider = "groq"
	ProviderGeneric Provider = "generic"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a single completion call against one model.
type Request struct {
	APIKey      string
	Model       string
	Messages    []Message
	Temperature *float64
	// SystemAsHuman folds system instructions into the first user turn for
	// models without native system prompt support.
	SystemAsHuman bool
}

// Temperature returns a pointer suitable for Request.Temperature.
func Temperature(t float64) *float64 {
	return &t
}

// splitSystem separates system instructions from the conversation turns.
func splitSystem(msgs []Message) (string, []Message) {
	var system []string
	turns := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		turns = append(turns, m)
	}
	return strings.Join(system, "\n\n"), turns
}

// mergeSystemIntoFirstUser prepends the system text to the first user turn.
func mergeSystemIntoFirstUser(msgs []Message) []Message {
	system, turns := splitSystem(msgs)
	if system == "" {
		return turns
	}
	for i, m := range turns {
		if m.Role == RoleUser {
			turns[i].Content = system + "\n\n" + m.Content
			return turns
		}
	}
	return append([]Message{{Role: RoleUser, Content: system}}, turns...)
}
