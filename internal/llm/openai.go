package llm

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompatibleClient serves providers exposing the OpenAI chat
// completions API, such as Groq.
type OpenAICompatibleClient struct {
	Name       string
	BaseURL    string
	HTTPClient *http.Client
}

func NewOpenAICompatibleClient(name, baseURL string, httpClient *http.Client) *OpenAICompatibleClient {
	return &OpenAICompatibleClient{Name: name, BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *OpenAICompatibleClient) Complete(ctx context.Context, req Request) (string, error) {
	cfg := openai.DefaultConfig(req.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.HTTPClient != nil {
		cfg.HTTPClient = c.HTTPClient
	}
	client := openai.NewClientWithConfig(cfg)

	msgs := req.Messages
	if req.SystemAsHuman {
		msgs = mergeSystemIntoFirstUser(req.Messages)
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(msgs)),
	}
	for _, m := range msgs {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    openAIRole(m.Role),
			Content: m.Content,
		})
	}
	if req.Temperature != nil {
		chatReq.Temperature = float32(*req.Temperature)
	}

	resp, err := client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", c.Name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", c.Name)
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIRole(r Role) string {
	switch r {
	case RoleSystem:
		return openai.ChatMessageRoleSystem
	case RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
