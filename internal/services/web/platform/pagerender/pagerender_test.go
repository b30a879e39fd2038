package pagerender

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

type stubResolver struct {
	viewer module.Viewer
	lang   string
}

func (s stubResolver) ResolveRequestViewer(*http.Request) module.Viewer { return s.viewer }
func (s stubResolver) ResolveRequestLanguage(*http.Request) string     { return s.lang }

func TestWriteModulePageRendersShellAndFragment(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/pt/dashboard/acme/projects", nil)
	resolver := stubResolver{viewer: module.Viewer{DisplayName: "Alice"}, lang: "pt"}

	err := WriteModulePage(w, r, resolver, ModulePage{
		Title:      "Projetos",
		EntitySlug: "acme",
		EntityName: "Acme Inc",
		Fragment:   webtemplates.EmptyState("nada"),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() = %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<html lang="pt">`) {
		t.Fatalf("expected resolved language in shell, got %q", body)
	}
	if !strings.Contains(body, "Acme Inc") || !strings.Contains(body, "Alice") {
		t.Fatalf("expected entity and viewer chrome, got %q", body)
	}
	if !strings.Contains(body, "nada") {
		t.Fatalf("expected fragment content, got %q", body)
	}
}

func TestWriteModulePageDefaultsStatusAndFragment(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)

	if err := WriteModulePage(w, r, nil, ModulePage{Title: "Dashboard"}); err != nil {
		t.Fatalf("WriteModulePage() = %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `<html lang="en">`) {
		t.Fatalf("expected path language fallback, got %q", w.Body.String())
	}
}

func TestWritePublicPageRendersPublicShell(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/en/pricing", nil)

	WritePublicPage(w, r, "Pricing", "en", nil, http.StatusOK, webtemplates.EmptyState("plans"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "public-main") || !strings.Contains(body, "plans") {
		t.Fatalf("expected public shell with body, got %q", body)
	}
}
