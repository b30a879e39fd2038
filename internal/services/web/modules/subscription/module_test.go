package subscription

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
)

type fakeGateway struct {
	sub apiclient.Subscription
	err error
}

func (f fakeGateway) Subscription(context.Context, string, string) (apiclient.Subscription, error) {
	if f.err != nil {
		return apiclient.Subscription{}, f.err
	}
	return f.sub, nil
}

func testDeps() module.Dependencies {
	return module.Dependencies{
		ResolveUserID:   func(*http.Request) string { return "user-1" },
		ResolveLanguage: func(*http.Request) string { return "en" },
	}
}

func newTestMux(t *testing.T, gateway BillingGateway) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	if err := NewWithGateway(gateway, testDeps()).Mount(mux); err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	return mux
}

func TestModuleID(t *testing.T) {
	t.Parallel()
	if got := (Module{}).ID(); got != "subscription" {
		t.Fatalf("ID() = %q, want %q", got, "subscription")
	}
}

func TestSubscriptionRendersPlan(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, fakeGateway{sub: apiclient.Subscription{
		Plan:         "pro",
		RenewsAt:     time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
		Entitlements: []string{"translation-memory", "priority-support"},
	}})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/dashboard/acme/subscription", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, want := range []string{"Plan: pro", "2026-12-01", "translation-memory"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestSubscriptionOmitsZeroRenewal(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, fakeGateway{sub: apiclient.Subscription{Plan: "free"}})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/dashboard/acme/subscription", nil))

	if strings.Contains(w.Body.String(), "Renews") {
		t.Fatalf("body should omit renewal for zero time: %q", w.Body.String())
	}
}

func TestSubscriptionGatewayError(t *testing.T) {
	t.Parallel()
	mux := newTestMux(t, fakeGateway{err: apperrors.E(apperrors.KindUnavailable, "down")})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/dashboard/acme/subscription", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
