package projects

import (
	"net/http"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/httpx"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/modulehandler"
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

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	list, err := h.service.list(r.Context(), h.RequestUserID(r), slug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "projects.heading"), http.StatusOK, slug, "",
		webtemplates.ProjectsList(list, lang, slug, loc))
}

func (h handlers) handleNewForm(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	h.WritePage(w, r, webtemplates.T(loc, "projects.new"), http.StatusOK, slug, "",
		webtemplates.ProjectForm(lang, slug, "", loc))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	project, err := h.service.create(r.Context(), h.RequestUserID(r), slug,
		r.PostFormValue("name"), r.PostFormValue("source_language"))
	if err != nil {
		// Validation failures re-render the form instead of an error page.
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			h.WritePage(w, r, webtemplates.T(loc, "projects.new"), http.StatusBadRequest, slug, "",
				webtemplates.ProjectForm(lang, slug, err.Error(), loc))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Project(lang, slug, project.ID))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	project, err := h.service.get(r.Context(), h.RequestUserID(r), slug, r.PathValue("projectID"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, project.Name, http.StatusOK, slug, "",
		webtemplates.ProjectDetail(project, lang, slug, loc))
}

func (h handlers) handleDictionary(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")
	userID := h.RequestUserID(r)
	projectID := r.PathValue("projectID")

	project, err := h.service.get(r.Context(), userID, slug, projectID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	terms, err := h.service.terms(r.Context(), userID, slug, projectID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "dictionary.heading"), http.StatusOK, slug, "",
		webtemplates.DictionaryPage(project, terms, lang, slug, loc))
}

func (h handlers) handleDictionaryAdd(w http.ResponseWriter, r *http.Request) {
	_, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")
	projectID := r.PathValue("projectID")

	err := h.service.addTerm(r.Context(), h.RequestUserID(r), slug, projectID,
		r.PostFormValue("source"), r.PostFormValue("target"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Dictionary(lang, slug, projectID))
}

func (h handlers) handleDictionaryDrop(w http.ResponseWriter, r *http.Request) {
	_, lang := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")
	projectID := r.PathValue("projectID")

	err := h.service.removeTerm(r.Context(), h.RequestUserID(r), slug, projectID,
		r.PostFormValue("term_id"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Dictionary(lang, slug, projectID))
}
