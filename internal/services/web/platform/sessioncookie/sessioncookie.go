// Package sessioncookie centralizes web session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "whisperly_session"

// Read returns the trimmed session token when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, token string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
