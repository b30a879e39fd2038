// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/httpx"
	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

// RequestResolver resolves viewer and language state from a request.
// This decouples platform rendering from the module-layer Dependencies type.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage describes a dashboard page response.
type ModulePage struct {
	Title      string
	StatusCode int
	EntitySlug string
	EntityName string
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using the shared app-shell layout.
// The fragment renders to a buffer first so template failures surface as
// errors instead of truncated responses.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var resolveLanguage module.ResolveLanguage
	viewer := module.Viewer{}
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		viewer = resolver.ResolveRequestViewer(r)
	}
	loc, lang := webi18n.ResolveLocalizer(r, resolveLanguage)

	currentPath := ""
	if r != nil && r.URL != nil {
		currentPath = r.URL.Path
	}
	layout := webtemplates.AppLayout(webtemplates.AppLayoutOptions{
		Title:       page.Title,
		Lang:        lang,
		Loc:         loc,
		EntitySlug:  page.EntitySlug,
		EntityName:  page.EntityName,
		UserName:    viewer.DisplayName,
		CurrentPath: currentPath,
	})

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	var buf bytes.Buffer
	if err := layout.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WritePublicPage writes an unauthenticated page using the public layout.
func WritePublicPage(w http.ResponseWriter, r *http.Request, title string, lang string, loc webtemplates.Localizer, statusCode int, body templ.Component) {
	if w == nil {
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if body == nil {
		body = emptyComponent{}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var rendered bytes.Buffer
	if err := webtemplates.PublicLayout(title, lang, loc).Render(ctx, &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(rendered.Bytes())
}
