package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(token string) (*model.User, error) {
	switch token {
	case "good":
		return &model.User{Document: model.Document{ID: "u1"}, Username: "soceng"}, nil
	case "expired":
		return nil, util.NewAuthError(util.ErrTokenExpired)
	case "db-down":
		return nil, errors.New("connection refused")
	default:
		return nil, util.NewAuthError(util.ErrInvalidToken)
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(stubAuthenticator{}), func(c *gin.Context) {
		util.Success(c, util.GetUserFromContext(c).Username)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer good", http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"no bearer prefix", "good", http.StatusUnauthorized},
		{"expired", "Bearer expired", http.StatusUnauthorized},
		{"forged", "Bearer forged", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareUnexpectedErrorIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(stubAuthenticator{}), func(c *gin.Context) {
		util.Success(c, "unreachable")
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer db-down")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (%s)", w.Code, w.Body.String())
	}
	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Invalid token" {
		t.Fatalf("message = %q", resp.Message)
	}
}
