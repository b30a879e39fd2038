// Package workspace serves workspace management pages: the workspace
// switcher, the member roster and pending invitations.
package workspace

import (
	"net/http"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
)

// Module provides workspace, member and invitation routes for an entity.
type Module struct {
	gateway WorkspaceGateway
	deps    module.Dependencies
}

// NewWithGateway returns a workspace module backed by the given gateway.
func NewWithGateway(gateway WorkspaceGateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "workspace" }

// Mount wires workspace route handlers.
func (m Module) Mount(mux *http.ServeMux) error {
	registerRoutes(mux, newHandlers(newService(m.gateway), m.deps))
	return nil
}
