// Package settings serves per-workspace settings pages, currently the
// interface language preference.
package settings

import (
	"net/http"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/httpx"
	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/modulehandler"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/prefs"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

// Module provides the workspace settings routes.
type Module struct {
	deps module.Dependencies
}

// New returns the settings module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "settings" }

// Mount wires settings route handlers.
func (m Module) Mount(mux *http.ServeMux) error {
	if mux == nil {
		return nil
	}
	h := handlers{Base: modulehandler.NewBase(m.deps)}
	mux.HandleFunc(routepath.EntitySettingsPattern, h.handleSettings)
	mux.HandleFunc(routepath.EntityLocalePattern, h.handleLocale)
	return nil
}

type handlers struct {
	modulehandler.Base
}

func (h handlers) handleSettings(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	h.WritePage(w, r, webtemplates.T(loc, "settings.heading"), http.StatusOK, slug, "",
		webtemplates.EntitySettingsPage(slug, lang, loc))
}

// handleLocale persists the chosen language and reopens settings under
// the new language prefix.
func (h handlers) handleLocale(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("entitySlug")

	code, ok := platformi18n.Canonical(r.PostFormValue("language"))
	if !ok {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "unsupported language"))
		return
	}
	webi18n.ConfirmLanguage(prefs.NewCookieStore(w, r), code)
	httpx.WriteRedirect(w, r, routepath.EntitySettings(code, slug))
}
