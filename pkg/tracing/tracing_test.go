package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/items/:id", func(c *gin.Context) {
		_, span := StartSpan(c.Request.Context(), "lookup", attribute.String("item", c.Param("id")))
		EndSpan(span, errors.New("store down"))
		c.Status(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/items/7", nil))

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}

	child, server := spans[0], spans[1]
	if child.Name() != "lookup" || child.Status().Code != codes.Error {
		t.Errorf("child span: name %q status %v", child.Name(), child.Status().Code)
	}
	if child.Parent().SpanID() != server.SpanContext().SpanID() {
		t.Error("child span is not parented to the request span")
	}
	if server.Name() != "GET /api/items/:id" {
		t.Errorf("server span name: %q", server.Name())
	}
	if server.Status().Code != codes.Error {
		t.Errorf("server span status: %v", server.Status().Code)
	}
}

func TestInitTracerRequiresEndpoint(t *testing.T) {
	if _, err := InitTracer("pretexta", ""); err == nil {
		t.Fatal("expected an error without a collector endpoint")
	}
}
