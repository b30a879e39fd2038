// Package dashboard serves the entity-agnostic dashboard entry point and
// the per-entity overview page.
package dashboard

import (
	"net/http"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
)

// Module provides authenticated dashboard routes.
type Module struct {
	gateway EntityGateway
	deps    module.Dependencies
}

// NewWithGateway returns a dashboard module backed by the given gateway.
func NewWithGateway(gateway EntityGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether the entity gateway is wired.
func (m Module) Healthy() bool {
	_, unavailable := m.gateway.(unavailableGateway)
	return m.gateway != nil && !unavailable
}

// Mount wires dashboard route handlers.
func (m Module) Mount(mux *http.ServeMux) error {
	registerRoutes(mux, newHandlers(newService(m.gateway), m.deps))
	return nil
}
