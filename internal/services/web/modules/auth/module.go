// Package auth serves sign-in and sign-out for the dashboard.
package auth

import (
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/session"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
)

// TokenVerifier validates collaborator-issued session tokens.
type TokenVerifier interface {
	Configured() bool
	Verify(token string) (session.Claims, error)
}

// Module provides login and logout routes.
type Module struct {
	verifier TokenVerifier
	policy   requestmeta.SchemePolicy
}

// New returns an auth module backed by the given verifier.
func New(verifier TokenVerifier, policy requestmeta.SchemePolicy) Module {
	return Module{verifier: verifier, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Healthy reports whether sign-in can currently succeed.
func (m Module) Healthy() bool {
	return m.verifier != nil && m.verifier.Configured()
}

// Mount wires the auth route handlers.
func (m Module) Mount(mux *http.ServeMux) error {
	registerRoutes(mux, newHandlers(m.verifier, m.policy))
	return nil
}
