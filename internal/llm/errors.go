package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrAllModelsFailed is reported when a fallback run produced no error to
// surface.
var ErrAllModelsFailed = errors.New("all models failed")

// ConfigurationError means no usable provider configuration is stored.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string   { return e.Message }
func (e *ConfigurationError) HTTPStatus() int { return http.StatusBadRequest }

type UnsupportedProviderError struct {
	Provider Provider
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("Unsupported provider: %s", e.Provider)
}
func (e *UnsupportedProviderError) HTTPStatus() int { return http.StatusBadRequest }

// GenerationError is a provider call that failed after every attempt.
// Message is safe to show to the caller.
type GenerationError struct {
	Provider Provider
	Message  string
	Err      error
}

func (e *GenerationError) Error() string   { return e.Message }
func (e *GenerationError) Unwrap() error   { return e.Err }
func (e *GenerationError) HTTPStatus() int { return http.StatusInternalServerError }

// Redact removes the credential from text that may echo request details.
func Redact(text, apiKey string) string {
	if apiKey == "" {
		return text
	}
	return strings.ReplaceAll(text, apiKey, "***")
}

// NewGenerationFailure wraps a pretext generation failure.
func NewGenerationFailure(provider Provider, err error, apiKey string) *GenerationError {
	msg := Redact(err.Error(), apiKey)
	if strings.Contains(msg, "NOT_FOUND") {
		msg = "Model not found. Your API Key might not support the selected model, or the region is restricted."
	}
	return &GenerationError{
		Provider: provider,
		Message:  "LLM Generation Error: " + msg,
		Err:      err,
	}
}

// NewChatFailure wraps a roleplay chat failure, turning well known HTTP
// statuses into actionable hints.
func NewChatFailure(provider Provider, err error, apiKey string) *GenerationError {
	msg := Redact(err.Error(), apiKey)
	switch {
	case strings.Contains(msg, "401"):
		msg = fmt.Sprintf("Unauthorized. Please check your API Key for %s.", provider)
	case strings.Contains(msg, "404"):
		msg = fmt.Sprintf("Model Not Found. Provider: %s.", provider)
	case strings.Contains(msg, "429"):
		msg = fmt.Sprintf("Rate Limit Exceeded. Please try again later. Provider: %s.", provider)
	}
	return &GenerationError{Provider: provider, Message: msg, Err: err}
}
