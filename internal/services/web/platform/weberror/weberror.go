// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/httpx"
	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized app-shell error response.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(r, deps.ResolveLanguage)
	fragment := webtemplates.AppErrorState(statusCode, loc)

	viewer := module.Viewer{}
	if deps.ResolveViewer != nil {
		viewer = deps.ResolveViewer(r)
	}

	currentPath := ""
	if r != nil && r.URL != nil {
		currentPath = r.URL.Path
	}
	layout := webtemplates.AppLayout(webtemplates.AppLayoutOptions{
		Title:       webtemplates.AppErrorPageTitle(statusCode, loc),
		Lang:        lang,
		Loc:         loc,
		UserName:    viewer.DisplayName,
		CurrentPath: currentPath,
	})

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	var buf bytes.Buffer
	if err := layout.Render(ctx, &buf); err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// WriteModuleError writes a module-safe localized error response.
// Not-found and server-side failures render the app error page; other
// statuses degrade to a plain localized message.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r, deps.ResolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
