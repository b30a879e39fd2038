// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Viewer contains user-facing chrome data for authenticated app pages.
type Viewer struct {
	DisplayName string
	Email       string
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request carries a verified session.
type ResolveSignedIn func(*http.Request) bool

// ResolveUserID resolves the authenticated user id for a request.
type ResolveUserID func(*http.Request) string

// ResolveLanguage returns the effective request language code.
type ResolveLanguage func(*http.Request) string

// Module declares the minimum contract required by web composition.
// Routes carry their own language and entity wildcards, so modules
// register patterns directly on the shared mux instead of mounting
// under a prefix.
type Module interface {
	ID() string
	Mount(mux *http.ServeMux) error
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with gateway dependencies implement this
// so composition can derive service health without centralizing client
// knowledge.
type HealthReporter interface {
	Healthy() bool
}

// Dependencies carries the request-scoped resolvers shared by protected
// module handlers and platform rendering.
type Dependencies struct {
	ResolveUserID   ResolveUserID
	ResolveLanguage ResolveLanguage
	ResolveViewer   ResolveViewer
	ResolveSignedIn ResolveSignedIn
}
