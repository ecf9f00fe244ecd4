package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveLLMAttempt(t *testing.T) {
	success := LLMAttempts.WithLabelValues("gemini", "test-model", "success")
	failure := LLMAttempts.WithLabelValues("gemini", "test-model", "failure")
	beforeOK, beforeFail := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	ObserveLLMAttempt("gemini", "test-model", nil, time.Second)
	ObserveLLMAttempt("gemini", "test-model", errors.New("boom"), time.Second)
	ObserveLLMAttempt("gemini", "test-model", errors.New("boom"), time.Second)

	if got := testutil.ToFloat64(success) - beforeOK; got != 1 {
		t.Errorf("success attempts: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(failure) - beforeFail; got != 2 {
		t.Errorf("failed attempts: got %v, want 2", got)
	}
}

func TestMetricsMiddlewareLabelsUnmatchedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	matched := RequestCounter.WithLabelValues(http.MethodGet, "/api/ping", "204")
	unmatched := RequestCounter.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	beforeMatched, beforeUnmatched := testutil.ToFloat64(matched), testutil.ToFloat64(unmatched)

	for _, path := range []string{"/api/ping", "/nope/1", "/nope/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(matched) - beforeMatched; got != 1 {
		t.Errorf("matched route: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(unmatched) - beforeUnmatched; got != 2 {
		t.Errorf("unmatched routes: got %v, want 2", got)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()
}
