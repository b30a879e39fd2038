// Package projects serves localization project management pages.
package projects

import (
	"net/http"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
)

// Module provides project and dictionary routes for an entity.
type Module struct {
	gateway ProjectGateway
	deps    module.Dependencies
}

// NewWithGateway returns a projects module backed by the given gateway.
func NewWithGateway(gateway ProjectGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "projects" }

// Mount wires project route handlers.
func (m Module) Mount(mux *http.ServeMux) error {
	registerRoutes(mux, newHandlers(newService(m.gateway), m.deps))
	return nil
}
