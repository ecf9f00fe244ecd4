package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	defaultClaudeBaseURL = "https://api.anthropic.com"
	anthropicVersion     = "2023-06-01"
	claudeMaxTokens      = 1024
)

// ClaudeClient calls the Anthropic Messages API.
type ClaudeClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClaudeClient(baseURL string, httpClient *http.Client) *ClaudeClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultClaudeBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ClaudeClient{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: httpClient}
}

type claudeRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

func (c *ClaudeClient) Complete(ctx context.Context, req Request) (string, error) {
	system, turns := splitSystem(req.Messages)
	if req.SystemAsHuman {
		system, turns = "", mergeSystemIntoFirstUser(req.Messages)
	}

	payload, err := json.Marshal(claudeRequest{
		Model:       req.Model,
		MaxTokens:   claudeMaxTokens,
		System:      system,
		Messages:    turns,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", req.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		errType := gjson.GetBytes(body, "error.type").String()
		message := gjson.GetBytes(body, "error.message").String()
		if message == "" {
			message = strings.TrimSpace(string(body))
		}
		return "", fmt.Errorf("claude API error (status %d %s): %s", resp.StatusCode, errType, message)
	}

	var sb strings.Builder
	for _, text := range gjson.GetBytes(body, `content.#(type=="text")#.text`).Array() {
		sb.WriteString(text.String())
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("claude returned no text content")
	}
	return sb.String(), nil
}
