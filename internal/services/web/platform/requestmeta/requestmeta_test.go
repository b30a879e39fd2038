package requestmeta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSPlainRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://whisperly.io/en", nil)
	if IsHTTPS(r, SchemePolicy{}) {
		t.Fatal("expected plain request to not be HTTPS")
	}
}

func TestIsHTTPSIgnoresForwardedProtoByDefault(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://whisperly.io/en", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(r, SchemePolicy{}) {
		t.Fatal("expected forwarded proto to be ignored without policy")
	}
	if !IsHTTPS(r, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("expected forwarded proto to be honored with policy")
	}
}

func TestHasSameOriginProofMatchingOrigin(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "http://whisperly.io/en/dashboard", nil)
	r.Header.Set("Origin", "http://whisperly.io")
	if !HasSameOriginProof(r, SchemePolicy{}) {
		t.Fatal("expected matching origin to prove same-origin")
	}
}

func TestHasSameOriginProofForeignOrigin(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "http://whisperly.io/en/dashboard", nil)
	r.Header.Set("Origin", "http://evil.example")
	if HasSameOriginProof(r, SchemePolicy{}) {
		t.Fatal("expected foreign origin to fail same-origin proof")
	}
}

func TestHasSameOriginProofFallsBackToReferer(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "http://whisperly.io/en/dashboard", nil)
	r.Header.Set("Referer", "http://whisperly.io/en/dashboard/acme")
	if !HasSameOriginProof(r, SchemePolicy{}) {
		t.Fatal("expected matching referer to prove same-origin")
	}
}

func TestHasSameOriginProofMissingHeaders(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "http://whisperly.io/en/dashboard", nil)
	if HasSameOriginProof(r, SchemePolicy{}) {
		t.Fatal("expected missing headers to fail same-origin proof")
	}
}

func TestHasSameOriginProofPortMismatch(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "http://whisperly.io:8443/en/dashboard", nil)
	r.Header.Set("Origin", "http://whisperly.io")
	if HasSameOriginProof(r, SchemePolicy{}) {
		t.Fatal("expected port mismatch to fail same-origin proof")
	}
}
