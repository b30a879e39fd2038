// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules share common handler infrastructure for user resolution,
// localization, page rendering, and error handling. This package extracts
// that shared scaffold so modules embed it rather than duplicating it.
package modulehandler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/pagerender"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/weberror"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by protected module
// handlers. Embed this in module handler structs to get standard user
// resolution, localization, page rendering, and error writing.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from composed dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// NewTestBase builds a handler base with no-op resolvers suitable for tests
// that do not exercise user resolution, localization, or viewer state.
func NewTestBase() Base {
	return Base{deps: module.Dependencies{
		ResolveUserID:   func(*http.Request) string { return "" },
		ResolveLanguage: func(*http.Request) string { return "" },
		ResolveViewer:   func(*http.Request) module.Viewer { return module.Viewer{} },
	}}
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return b.deps.ResolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language code.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.deps.ResolveLanguage == nil {
		return ""
	}
	return b.deps.ResolveLanguage(r)
}

// PageLocalizer resolves a localizer and language code from the request.
func (b Base) PageLocalizer(r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(r, b.deps.ResolveLanguage)
}

// RequestUserID extracts the authenticated user ID from the request.
func (b Base) RequestUserID(r *http.Request) string {
	if r == nil || b.deps.ResolveUserID == nil {
		return ""
	}
	return strings.TrimSpace(b.deps.ResolveUserID(r))
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// WritePage renders a full module page with the given title, entity chrome,
// and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	entitySlug string,
	entityName string,
	fragment templ.Component,
) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		EntitySlug: entitySlug,
		EntityName: entityName,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}
