package web

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/session"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/sessioncookie"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WHISPERLY_WEB_HTTP_ADDR", "localhost:9000")
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:9001", "-api-base-url", "http://api.local"})
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if cfg.HTTPAddr != "localhost:9001" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:9001")
	}
	if cfg.APIBaseURL != "http://api.local" {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "http://api.local")
	}
}

func signTestToken(t *testing.T, key []byte, userID string, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestBuildDependenciesResolvesSessionClaims(t *testing.T) {
	t.Parallel()
	key := []byte("test-signing-key")
	verifier, err := session.NewVerifier(key)
	if err != nil {
		t.Fatalf("NewVerifier() = %v", err)
	}
	deps := buildDependencies(verifier)

	r := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: signTestToken(t, key, "user-7", "jane@acme.test")})

	if !deps.ResolveSignedIn(r) {
		t.Fatalf("ResolveSignedIn = false, want true")
	}
	if got := deps.ResolveUserID(r); got != "user-7" {
		t.Fatalf("ResolveUserID = %q, want %q", got, "user-7")
	}
	viewer := deps.ResolveViewer(r)
	if viewer.DisplayName != "jane" || viewer.Email != "jane@acme.test" {
		t.Fatalf("viewer = %+v", viewer)
	}
}

func TestBuildDependenciesRejectsMissingOrInvalidSession(t *testing.T) {
	t.Parallel()
	verifier, err := session.NewVerifier([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("NewVerifier() = %v", err)
	}
	deps := buildDependencies(verifier)

	anonymous := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)
	if deps.ResolveSignedIn(anonymous) {
		t.Fatalf("ResolveSignedIn = true for missing cookie")
	}

	forged := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)
	forged.AddCookie(&http.Cookie{
		Name:  sessioncookie.Name,
		Value: signTestToken(t, []byte("wrong-key"), "user-7", "jane@acme.test"),
	})
	if deps.ResolveSignedIn(forged) {
		t.Fatalf("ResolveSignedIn = true for forged token")
	}
	if got := deps.ResolveUserID(forged); got != "" {
		t.Fatalf("ResolveUserID = %q, want empty", got)
	}
}

func TestBuildDependenciesResolvesLanguageFromPath(t *testing.T) {
	t.Parallel()
	deps := buildDependencies(session.Verifier{})
	r := httptest.NewRequest(http.MethodGet, "/pt/dashboard", nil)
	if got := deps.ResolveLanguage(r); got != "pt" {
		t.Fatalf("ResolveLanguage = %q, want %q", got, "pt")
	}
}
