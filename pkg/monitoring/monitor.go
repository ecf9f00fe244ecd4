package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pretexta"

// unmatchedRoute labels requests that hit no registered route, keeping the
// endpoint label bounded.
const unmatchedRoute = "unmatched"

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 15, 60},
		},
		[]string{"method", "endpoint"},
	)

	// LLMAttempts counts upstream model calls, one per fallback candidate tried.
	LLMAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_attempts_total",
			Help:      "Upstream LLM completion attempts by provider, model and outcome",
		},
		[]string{"provider", "model", "outcome"},
	)

	LLMAttemptDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_attempt_duration_seconds",
			Help:      "Latency of single upstream LLM completion attempts",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 15, 30, 60},
		},
		[]string{"provider", "outcome"},
	)

	registerOnce sync.Once
)

// Init registers the collectors with the default registry. Repeated calls
// are no-ops.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDuration, LLMAttempts, LLMAttemptDuration)
	})
}

// ObserveLLMAttempt records one completion attempt.
func ObserveLLMAttempt(provider, model string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	LLMAttempts.WithLabelValues(provider, model, outcome).Inc()
	LLMAttemptDuration.WithLabelValues(provider, outcome).Observe(elapsed.Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedRoute
		}
		method := c.Request.Method

		RequestCounter.WithLabelValues(method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
