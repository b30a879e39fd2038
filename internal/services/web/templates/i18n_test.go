package templates

import (
	"strings"
	"testing"
)

func TestTFallsBackToKeyWithoutLocalizer(t *testing.T) {
	t.Parallel()
	if got := T(nil, "projects.heading"); got != "projects.heading" {
		t.Fatalf("T = %q, want %q", got, "projects.heading")
	}
}

func TestTFormatsArgsWithoutLocalizer(t *testing.T) {
	t.Parallel()
	if got := T(nil, "%s | Dashboard", "Acme"); got != "Acme | Dashboard" {
		t.Fatalf("T = %q, want %q", got, "Acme | Dashboard")
	}
}

func TestAppErrorStateUsesNotFoundCopy(t *testing.T) {
	t.Parallel()
	got := renderComponent(t, AppErrorState(404, nil))
	for _, want := range []string{`data-status="404"`, "error.title_not_found", "error.message_not_found"} {
		if !strings.Contains(got, want) {
			t.Fatalf("AppErrorState = %q, want fragment containing %q", got, want)
		}
	}
}

func TestAppErrorStateNormalizesUnknownStatus(t *testing.T) {
	t.Parallel()
	got := renderComponent(t, AppErrorState(418, nil))
	for _, want := range []string{`data-status="500"`, "error.title_server_error"} {
		if !strings.Contains(got, want) {
			t.Fatalf("AppErrorState = %q, want fragment containing %q", got, want)
		}
	}
}

func TestLoadingStateAnnouncesPolitely(t *testing.T) {
	t.Parallel()
	got := renderComponent(t, LoadingState(nil))
	if !strings.Contains(got, `aria-live="polite"`) {
		t.Fatalf("LoadingState = %q, want aria-live annotation", got)
	}
	if !strings.Contains(got, "dashboard.loading") {
		t.Fatalf("LoadingState = %q, want loading copy key fallback", got)
	}
}
