package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var errAttemptTimeout = errors.New("request timed out")

// Attempt records one model tried during a fallback run.
type Attempt struct {
	Model    string
	Err      error
	Duration time.Duration
}

// FallbackPolicy tries candidate models strictly in order.
type FallbackPolicy struct {
	// Timeout bounds each attempt; zero leaves it to the caller's context.
	Timeout time.Duration
	Logger  *zap.Logger
	// Label prefixes log lines, e.g. "generate" or "chat".
	Label string
}

type attemptResult struct {
	text string
	err  error
}

// Run calls fn for each candidate until one succeeds. Every failure is logged
// and recorded; if all fail the last error is returned.
func (p FallbackPolicy) Run(ctx context.Context, candidates []string, fn func(ctx context.Context, model string) (string, error)) (string, []Attempt, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	attempts := make([]Attempt, 0, len(candidates))
	var lastErr error

	for _, model := range candidates {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		log.Info("llm attempt", zap.String("op", p.Label), zap.String("model", model))
		start := time.Now()
		text, err := p.attempt(ctx, model, fn)
		attempts = append(attempts, Attempt{Model: model, Err: err, Duration: time.Since(start)})

		if err == nil {
			log.Info("llm attempt succeeded", zap.String("op", p.Label), zap.String("model", model))
			return text, attempts, nil
		}

		log.Warn("llm attempt failed",
			zap.String("op", p.Label),
			zap.String("model", model),
			zap.Error(err),
		)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = ErrAllModelsFailed
	}
	return "", attempts, lastErr
}

func (p FallbackPolicy) attempt(ctx context.Context, model string, fn func(ctx context.Context, model string) (string, error)) (string, error) {
	if p.Timeout <= 0 {
		return fn(ctx, model)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	done := make(chan attemptResult, 1)
	go func() {
		text, err := fn(attemptCtx, model)
		done <- attemptResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", errAttemptTimeout, p.Timeout)
		}
		return res.text, res.err
	case <-attemptCtx.Done():
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", errAttemptTimeout, p.Timeout)
		}
		return "", attemptCtx.Err()
	}
}

// Candidates drops empty and repeated names, keeping first occurrence order.
func Candidates(models ...string) []string {
	seen := make(map[string]struct{}, len(models))
	out := make([]string, 0, len(models))
	for _, m := range models {
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
