package i18n

import (
	"net/http"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
)

// ResolveLocalizer returns a message printer and language code for the
// request. The resolver seam reflects the composed language middleware;
// absent that, the URL prefix and finally the default language apply.
func ResolveLocalizer(r *http.Request, resolve module.ResolveLanguage) (Localizer, string) {
	code := ""
	if resolve != nil && r != nil {
		code = resolve(r)
	}
	if code == "" && r != nil {
		if pathCode, ok := PathLanguage(r.URL.Path); ok {
			code = pathCode
		}
	}
	if !platformi18n.IsSupported(code) {
		code = platformi18n.DefaultCode
	}
	return Printer(code), code
}
