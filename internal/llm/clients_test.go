package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestGeminiClient(t *testing.T) {
	var path, key string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.Header.Get("x-goog-api-key")
		body, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"world"}]}}]}`)
	}))
	defer srv.Close()

	client := NewGeminiClient(srv.URL, srv.Client())
	text, err := client.Complete(context.Background(), Request{
		APIKey: "AIza",
		Model:  "models/gemini-pro",
		Messages: []Message{
			{Role: RoleSystem, Content: "be brief"},
			{Role: RoleUser, Content: "hi"},
		},
		Temperature:   Temperature(0.7),
		SystemAsHuman: true,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "Hello world" {
		t.Fatalf("text = %q", text)
	}
	if path != "/v1beta/models/gemini-pro:generateContent" || key != "AIza" {
		t.Fatalf("path=%s key=%s", path, key)
	}
	if gjson.GetBytes(body, "systemInstruction").Exists() {
		t.Fatal("system prompt should be folded into the user turn")
	}
	if got := gjson.GetBytes(body, "contents.0.parts.0.text").String(); got != "be brief\n\nhi" {
		t.Fatalf("first turn = %q", got)
	}
}

func TestGeminiClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":{"code":404,"message":"models/x is not found","status":"NOT_FOUND"}}`)
	}))
	defer srv.Close()

	_, err := NewGeminiClient(srv.URL, srv.Client()).Complete(context.Background(), Request{Model: "x"})
	if err == nil || !strings.Contains(err.Error(), "NOT_FOUND") || !strings.Contains(err.Error(), "404") {
		t.Fatalf("err = %v", err)
	}
}

func TestClaudeClient(t *testing.T) {
	var payload claudeRequest
	var version string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version = r.Header.Get("anthropic-version")
		json.NewDecoder(r.Body).Decode(&payload)
		io.WriteString(w, `{"content":[{"type":"text","text":"I am Bob from IT."}]}`)
	}))
	defer srv.Close()

	text, err := NewClaudeClient(srv.URL, srv.Client()).Complete(context.Background(), Request{
		APIKey: "sk-ant",
		Model:  ClaudeSonnetModel,
		Messages: []Message{
			{Role: RoleSystem, Content: "roleplay"},
			{Role: RoleUser, Content: "who are you?"},
		},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "I am Bob from IT." {
		t.Fatalf("text = %q", text)
	}
	if version != anthropicVersion || payload.System != "roleplay" || len(payload.Messages) != 1 {
		t.Fatalf("unexpected request: version=%s payload=%+v", version, payload)
	}
}

func TestOpenAICompatibleClient(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"hey"}}]}`)
	}))
	defer srv.Close()

	client := NewOpenAICompatibleClient("groq", srv.URL, srv.Client())
	text, err := client.Complete(context.Background(), Request{
		APIKey:   "gsk",
		Model:    GroqChatModel,
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "hey" || auth != "Bearer gsk" {
		t.Fatalf("text=%q auth=%q", text, auth)
	}
}

func TestOpenAICompatibleClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	_, err := NewOpenAICompatibleClient("groq", srv.URL, srv.Client()).Complete(context.Background(), Request{Model: "m"})
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("err = %v", err)
	}
}
