// Package session verifies signed session tokens issued by the auth service.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
)

// Claims captures the validated identity carried by a session token.
type Claims struct {
	UserID string
	Email  string
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

// Verifier validates HS256 session tokens against the shared signing key.
// The zero value is unconfigured and rejects every token.
type Verifier struct {
	key []byte
	now func() time.Time
}

// ErrNotConfigured signals that no signing key was provided. Composition
// treats this as auth being unavailable rather than a per-request failure.
var ErrNotConfigured = errors.New("session verifier is not configured")

// NewVerifier builds a verifier from the shared signing key.
func NewVerifier(key []byte) (Verifier, error) {
	if len(key) == 0 {
		return Verifier{}, ErrNotConfigured
	}
	return Verifier{key: key, now: time.Now}, nil
}

// Configured reports whether the verifier holds a signing key.
func (v Verifier) Configured() bool {
	return len(v.key) > 0
}

// Verify parses and validates a session token, returning its claims.
func (v Verifier) Verify(token string) (Claims, error) {
	if !v.Configured() {
		return Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.E(apperrors.KindUnauthorized, "session token is required")
	}
	now := v.now
	if now == nil {
		now = time.Now
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return Claims{}, apperrors.E(apperrors.KindUnauthorized, "invalid session token")
	}
	userID := strings.TrimSpace(parsed.UserID)
	if userID == "" {
		return Claims{}, apperrors.E(apperrors.KindUnauthorized, "session token missing subject")
	}
	return Claims{UserID: userID, Email: strings.TrimSpace(parsed.Email)}, nil
}
