package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestTokenExpiry_WithExp(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiry(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected exp %v, got %v", exp, got)
	}
}

func TestTokenExpiry_NoExp(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "42"})

	got, err := TokenExpiry(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero time, got %v", got)
	}
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, err := TokenExpiry("opaque-session-token")

	if !errors.Is(err, ErrNotJWT) {
		t.Fatalf("expected ErrNotJWT, got: %v", err)
	}
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "expired",
			token: signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}),
			want:  true,
		},
		{
			name:  "valid",
			token: signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}),
			want:  false,
		},
		{
			name:  "no exp",
			token: signedToken(t, jwt.RegisteredClaims{Issuer: "books"}),
			want:  false,
		},
		{
			name:  "opaque",
			token: "abc123",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTokenExpired(tt.token, now); got != tt.want {
				t.Errorf("IsTokenExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
