package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type teapotError struct{}

func (teapotError) Error() string   { return "short and stout" }
func (teapotError) HTTPStatus() int { return http.StatusTeapot }

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"auth reason", NewAuthError(ErrTokenExpired), http.StatusUnauthorized, "Token expired"},
		{"bare unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"not found", ErrSimulationNotFound, http.StatusNotFound, "Simulation not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrQuizNotFound), http.StatusNotFound, "Lookup: quiz not found"},
		{"import", &ImportError{Err: errors.New("bad yaml")}, http.StatusBadRequest, "Import failed: bad yaml"},
		{"validation", &ValidationError{Field: "status", Message: "must be valid"}, http.StatusBadRequest, "Status: must be valid"},
		{"status error", teapotError{}, http.StatusTeapot, "short and stout"},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var resp Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Message != tt.message || resp.Code != tt.status {
				t.Fatalf("response = %+v, want message %q", resp, tt.message)
			}
		})
	}
}
