package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFallbackStopsAtFirstSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	policy := FallbackPolicy{Logger: zap.New(core), Label: "generate"}

	var tried []string
	text, attempts, err := policy.Run(context.Background(), []string{"a", "b", "c", "d"}, func(ctx context.Context, model string) (string, error) {
		tried = append(tried, model)
		if model == "c" {
			return "ok from c", nil
		}
		return "", errors.New(model + " failed")
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if text != "ok from c" {
		t.Fatalf("text = %q", text)
	}
	if strings.Join(tried, ",") != "a,b,c" {
		t.Fatalf("tried = %v", tried)
	}
	if len(attempts) != 3 || attempts[2].Err != nil || attempts[0].Err == nil {
		t.Fatalf("unexpected attempts: %+v", attempts)
	}
	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 2 {
		t.Fatalf("expected 2 warn entries, got %d", n)
	}
}

func TestFallbackReturnsLastError(t *testing.T) {
	policy := FallbackPolicy{}
	_, attempts, err := policy.Run(context.Background(), []string{"a", "b"}, func(ctx context.Context, model string) (string, error) {
		return "", errors.New(model + " failed")
	})
	if err == nil || err.Error() != "b failed" {
		t.Fatalf("err = %v, want last failure", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %d", len(attempts))
	}
}

func TestFallbackWithoutCandidates(t *testing.T) {
	_, _, err := FallbackPolicy{}.Run(context.Background(), nil, nil)
	if !errors.Is(err, ErrAllModelsFailed) {
		t.Fatalf("err = %v", err)
	}
}

func TestFallbackAttemptTimeout(t *testing.T) {
	policy := FallbackPolicy{Timeout: 20 * time.Millisecond}

	text, attempts, err := policy.Run(context.Background(), []string{"slow", "fast"}, func(ctx context.Context, model string) (string, error) {
		if model == "slow" {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "fast reply", nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if text != "fast reply" {
		t.Fatalf("text = %q", text)
	}
	if !errors.Is(attempts[0].Err, errAttemptTimeout) {
		t.Fatalf("first attempt error = %v, want timeout", attempts[0].Err)
	}
}

func TestCandidatesDedupe(t *testing.T) {
	got := Candidates("gemini-1.5-flash", "gemini-1.5-flash", "", "models/gemini-1.5-flash", "gemini-pro")
	want := "gemini-1.5-flash,models/gemini-1.5-flash,gemini-pro"
	if strings.Join(got, ",") != want {
		t.Fatalf("got %v", got)
	}
}
