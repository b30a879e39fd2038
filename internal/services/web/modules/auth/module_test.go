package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/session"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/sessioncookie"
)

type fakeVerifier struct {
	configured bool
	claims     session.Claims
	err        error
}

func (f fakeVerifier) Configured() bool { return f.configured }

func (f fakeVerifier) Verify(string) (session.Claims, error) {
	if f.err != nil {
		return session.Claims{}, f.err
	}
	return f.claims, nil
}

func newTestMux(t *testing.T, verifier TokenVerifier) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	if err := New(verifier, requestmeta.SchemePolicy{}).Mount(mux); err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	return mux
}

func okVerifier() fakeVerifier {
	return fakeVerifier{configured: true, claims: session.Claims{UserID: "user-1"}}
}

func TestLoginPageRendersForm(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, okVerifier())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/login", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `action="/en/login"`) {
		t.Fatalf("expected login form, got %q", w.Body.String())
	}
}

func TestLoginPageCarriesReturnURL(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, okVerifier())
	w := httptest.NewRecorder()
	target := "/en/login?returnUrl=" + url.QueryEscape("/en/dashboard/acme/projects")
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	if !strings.Contains(w.Body.String(), `value="/en/dashboard/acme/projects"`) {
		t.Fatalf("expected hidden returnUrl, got %q", w.Body.String())
	}
}

func TestLoginPageDropsOffsiteReturnURL(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, okVerifier())
	for _, raw := range []string{"https://evil.example", "//evil.example/x", "javascript:alert(1)"} {
		w := httptest.NewRecorder()
		target := "/en/login?returnUrl=" + url.QueryEscape(raw)
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if strings.Contains(w.Body.String(), "evil.example") || strings.Contains(w.Body.String(), "javascript:") {
			t.Fatalf("returnUrl %q leaked into form: %q", raw, w.Body.String())
		}
	}
}

func TestLoginSubmitSetsSessionAndRedirects(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, okVerifier())
	form := url.Values{"token": {"tok"}, "returnUrl": {"/en/dashboard/acme"}}
	r := httptest.NewRequest(http.MethodPost, "/en/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/en/dashboard/acme" {
		t.Fatalf("Location = %q, want %q", got, "/en/dashboard/acme")
	}
	found := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessioncookie.Name && cookie.Value == "tok" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected session cookie to be set")
	}
}

func TestLoginSubmitDefaultsToDashboard(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, okVerifier())
	form := url.Values{"token": {"tok"}}
	r := httptest.NewRequest(http.MethodPost, "/pt/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if got := w.Header().Get("Location"); got != "/pt/dashboard" {
		t.Fatalf("Location = %q, want %q", got, "/pt/dashboard")
	}
}

func TestLoginSubmitRejectsBadToken(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, fakeVerifier{configured: true, err: http.ErrNoCookie})
	form := url.Values{"token": {"bad"}}
	r := httptest.NewRequest(http.MethodPost, "/en/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			t.Fatal("session cookie must not be set on failed login")
		}
	}
}

func TestLoginUnavailableWithoutVerifier(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, fakeVerifier{})
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(method, "/en/login", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s status = %d, want %d", method, w.Code, http.StatusServiceUnavailable)
		}
	}
}

func TestLogoutClearsSessionAndRedirectsHome(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, okVerifier())
	r := httptest.NewRequest(http.MethodPost, "/pt/logout", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "tok"})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if got := w.Header().Get("Location"); got != "/pt" {
		t.Fatalf("Location = %q, want %q", got, "/pt")
	}
	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessioncookie.Name && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected session cookie to be cleared")
	}
}

func TestHealthyReflectsVerifier(t *testing.T) {
	t.Parallel()
	if New(fakeVerifier{}, requestmeta.SchemePolicy{}).Healthy() {
		t.Fatal("unconfigured verifier must not report healthy")
	}
	if !New(okVerifier(), requestmeta.SchemePolicy{}).Healthy() {
		t.Fatal("configured verifier must report healthy")
	}
}
