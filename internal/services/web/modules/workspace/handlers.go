package workspace

import (
	"net/http"

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

func (h handlers) handleWorkspaces(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	entities, err := h.service.entities(r.Context(), h.RequestUserID(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "workspaces.heading"), http.StatusOK, slug, "",
		webtemplates.WorkspacesPage(entities, slug, lang, loc))
}

// handleSwitch persists the chosen workspace and lands on its overview.
func (h handlers) handleSwitch(w http.ResponseWriter, r *http.Request) {
	_, lang := h.PageLocalizer(r)

	target, err := h.service.switchTo(r.Context(), h.RequestUserID(r), r.PostFormValue("slug"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	prefs.NewCookieStore(w, r).Set(prefs.LastEntityKey, target.Slug)
	httpx.WriteRedirect(w, r, routepath.Entity(lang, target.Slug))
}

func (h handlers) handleMembers(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	members, err := h.service.members(r.Context(), h.RequestUserID(r), slug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "members.heading"), http.StatusOK, slug, "",
		webtemplates.MembersPage(members, loc))
}

func (h handlers) handleInvitations(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	invitations, err := h.service.invitations(r.Context(), h.RequestUserID(r), slug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "invitations.heading"), http.StatusOK, slug, "",
		webtemplates.InvitationsPage(invitations, lang, slug, loc))
}

func (h handlers) handleInviteCreate(w http.ResponseWriter, r *http.Request) {
	_, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	if err := h.service.invite(r.Context(), h.RequestUserID(r), slug, r.PostFormValue("email")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Invitations(lang, slug))
}

func (h handlers) handleInviteRevoke(w http.ResponseWriter, r *http.Request) {
	_, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	if err := h.service.revoke(r.Context(), h.RequestUserID(r), slug, r.PostFormValue("token")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Invitations(lang, slug))
}
