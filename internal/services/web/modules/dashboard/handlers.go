package dashboard

import (
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/httpx"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/modulehandler"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/prefs"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps), service: s}
}

// handleIndex resolves the default entity and redirects to its overview.
// An empty entity list renders the no-workspace state instead of looping.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	userID := h.RequestUserID(r)
	store := prefs.NewCookieStore(w, r)
	stored, _ := store.Get(prefs.LastEntityKey)

	resolved, ok, err := h.service.resolveDefault(r.Context(), userID, stored)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if !ok {
		h.WritePage(w, r, webtemplates.T(loc, "title.dashboard"), http.StatusOK, "", "",
			webtemplates.DashboardNoEntities(loc))
		return
	}

	persistLastEntity(store, stored, resolved.Slug)
	httpx.WriteRedirect(w, r, routepath.Entity(lang, resolved.Slug))
}

func (h handlers) handleEntity(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	userID := h.RequestUserID(r)
	slug := r.PathValue("entitySlug")

	found, ok, err := h.service.find(r.Context(), userID, slug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if !ok {
		h.WriteNotFound(w, r)
		return
	}

	store := prefs.NewCookieStore(w, r)
	stored, _ := store.Get(prefs.LastEntityKey)
	persistLastEntity(store, stored, found.Slug)

	h.WritePage(w, r, webtemplates.T(loc, "title.dashboard"), http.StatusOK, found.Slug, found.DisplayName,
		webtemplates.EntityOverview(overviewData(found), lang, loc))
}

// persistLastEntity writes the preference only when it changed.
func persistLastEntity(store prefs.Store, stored string, slug string) {
	if stored == slug {
		return
	}
	store.Set(prefs.LastEntityKey, slug)
}

func overviewData(ent entity.Entity) webtemplates.EntityOverviewData {
	typeKey := "workspaces.organizational"
	if ent.Type == entity.TypePersonal {
		typeKey = "workspaces.personal"
	}
	return webtemplates.EntityOverviewData{
		Slug:        ent.Slug,
		DisplayName: ent.DisplayName,
		TypeKey:     typeKey,
	}
}
