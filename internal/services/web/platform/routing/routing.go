// Package routing models navigation guards as an explicit decision pipeline.
//
// Each guard inspects the request and returns either Proceed or a redirect
// target. Guards are evaluated in fixed order and the first redirect wins,
// so at most one redirect is issued per navigation and guards can never
// loop through each other.
package routing

import (
	"net/http"
	"strings"

	"github.com/sudobility/whisperly-web/internal/services/web/platform/httpx"
)

// Decision is the outcome of one routing guard.
type Decision struct {
	redirect string
}

// Proceed lets the navigation continue to the next guard or handler.
func Proceed() Decision {
	return Decision{}
}

// RedirectTo stops the pipeline and sends the browser to path.
func RedirectTo(path string) Decision {
	return Decision{redirect: strings.TrimSpace(path)}
}

// Redirect returns the redirect target when the decision is a redirect.
func (d Decision) Redirect() (string, bool) {
	if d.redirect == "" {
		return "", false
	}
	return d.redirect, true
}

// Guard evaluates one routing decision for a request.
type Guard func(*http.Request) Decision

// Evaluate runs guards in order and returns the first redirect decision,
// or Proceed when every guard passes.
func Evaluate(r *http.Request, guards ...Guard) Decision {
	for _, guard := range guards {
		if guard == nil {
			continue
		}
		if decision := guard(r); decision.redirect != "" {
			return decision
		}
	}
	return Proceed()
}

// Apply wraps next so guards run before it on every request.
func Apply(next http.Handler, guards ...Guard) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target, ok := Evaluate(r, guards...).Redirect(); ok {
			httpx.WriteRedirect(w, r, target)
			return
		}
		next.ServeHTTP(w, r)
	})
}
