package util

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret-unit-test-secret"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("user_id = %q", claims.UserID)
	}
	if d := time.Until(claims.ExpiresAt.Time); d <= 59*time.Minute || d > time.Hour {
		t.Fatalf("unexpected expiry in %v", d)
	}
}

func TestJWTRejections(t *testing.T) {
	expired, _ := GenerateJWT("user-1", testSecret, -time.Minute)
	wrongKey, _ := GenerateJWT("user-1", "other-secret", time.Hour)
	valid, _ := GenerateJWT("user-1", testSecret, time.Hour)
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "user-1"})
	withoutExpiry, _ := noExp.SignedString([]byte(testSecret))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"expired", expired, ErrTokenExpired},
		{"wrong key", wrongKey, ErrInvalidToken},
		{"tampered", tampered, ErrInvalidToken},
		{"alg none", unsigned, ErrInvalidToken},
		{"no expiry", withoutExpiry, ErrInvalidToken},
		{"garbage", "abc", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJWT(tt.token, testSecret)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
