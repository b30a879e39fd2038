// Package public serves the unauthenticated marketing pages.
package public

import "net/http"

// Module provides the public site routes.
type Module struct{}

// New returns a public site module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the public route handlers.
func (Module) Mount(mux *http.ServeMux) error {
	registerRoutes(mux, newHandlers())
	return nil
}
