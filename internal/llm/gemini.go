package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Generative Language generateContent endpoint.
type GeminiClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewGeminiClient(baseURL string, httpClient *http.Client) *GeminiClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultGeminiBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GeminiClient{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: httpClient}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

func buildGeminiRequest(req Request) geminiRequest {
	var out geminiRequest

	turns := req.Messages
	if req.SystemAsHuman {
		turns = mergeSystemIntoFirstUser(req.Messages)
	} else {
		var system string
		system, turns = splitSystem(req.Messages)
		if system != "" {
			out.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
		}
	}

	for _, m := range turns {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		out.Contents = append(out.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}

	if req.Temperature != nil {
		out.GenerationConfig = &geminiGenerationConfig{Temperature: req.Temperature}
	}
	return out
}

func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	payload, err := json.Marshal(buildGeminiRequest(req))
	if err != nil {
		return "", err
	}

	// "models/gemini-pro" and "gemini-pro" address the same resource
	model := strings.TrimPrefix(req.Model, "models/")
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, url.PathEscape(model))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", req.APIKey)

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
		status := gjson.GetBytes(body, "error.status").String()
		message := gjson.GetBytes(body, "error.message").String()
		if message == "" {
			message = strings.TrimSpace(string(body))
		}
		return "", fmt.Errorf("gemini API error (status %d %s): %s", resp.StatusCode, status, message)
	}

	var sb strings.Builder
	for _, part := range gjson.GetBytes(body, "candidates.0.content.parts.#.text").Array() {
		sb.WriteString(part.String())
	}
	if sb.Len() == 0 {
		if reason := gjson.GetBytes(body, "promptFeedback.blockReason").String(); reason != "" {
			return "", fmt.Errorf("gemini blocked the prompt: %s", reason)
		}
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return sb.String(), nil
}
