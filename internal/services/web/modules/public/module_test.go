package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	if err := New().Mount(mux); err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	return mux
}

func TestModuleID(t *testing.T) {
	t.Parallel()
	if got := New().ID(); got != "public" {
		t.Fatalf("ID() = %q, want %q", got, "public")
	}
}

func TestHomePageRendersLocalizedTagline(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<html lang="en">`) {
		t.Fatalf("expected English shell, got %q", body)
	}
	if !strings.Contains(body, "Translate your websites") {
		t.Fatalf("expected localized tagline, got %q", body)
	}
	if !strings.Contains(body, `href="/en/login"`) {
		t.Fatalf("expected sign-in link, got %q", body)
	}
}

func TestHomePageUsesPathLanguage(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pt", nil))

	if !strings.Contains(w.Body.String(), `<html lang="pt">`) {
		t.Fatalf("expected Portuguese shell, got %q", w.Body.String())
	}
}

func TestPricingPageListsPlans(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/pricing", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "unlimited projects") {
		t.Fatalf("expected plan copy, got %q", w.Body.String())
	}
}

func TestLegalPagesRender(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)
	for _, path := range []string{"/en/privacy", "/en/terms", "/en/cookies", "/en/sitemap"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}

func TestSettingsPageLinksLanguageVariants(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/settings", nil))

	body := w.Body.String()
	if !strings.Contains(body, `href="/pt/settings"`) {
		t.Fatalf("expected language switch link, got %q", body)
	}
	if !strings.Contains(body, `hreflang="zh-hant"`) {
		t.Fatalf("expected traditional Chinese variant, got %q", body)
	}
}
