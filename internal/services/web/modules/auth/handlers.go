package auth

import (
	"net/http"
	"strings"

	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/pagerender"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/sessioncookie"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

type handlers struct {
	verifier TokenVerifier
	policy   requestmeta.SchemePolicy
}

func newHandlers(verifier TokenVerifier, policy requestmeta.SchemePolicy) handlers {
	return handlers{verifier: verifier, policy: policy}
}

func (h handlers) configured() bool {
	return h.verifier != nil && h.verifier.Configured()
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	if !h.configured() {
		pagerender.WritePublicPage(w, r, webtemplates.T(loc, "title.login"), lang, loc,
			http.StatusServiceUnavailable, webtemplates.LoginUnavailable(loc))
		return
	}
	returnURL := sanitizeReturnURL(r.URL.Query().Get(routepath.ReturnURLKey))
	pagerender.WritePublicPage(w, r, webtemplates.T(loc, "title.login"), lang, loc,
		http.StatusOK, webtemplates.LoginForm(lang, returnURL, false, loc))
}

func (h handlers) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	if !h.configured() {
		pagerender.WritePublicPage(w, r, webtemplates.T(loc, "title.login"), lang, loc,
			http.StatusServiceUnavailable, webtemplates.LoginUnavailable(loc))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	returnURL := sanitizeReturnURL(r.PostFormValue(routepath.ReturnURLKey))
	token := strings.TrimSpace(r.PostFormValue("token"))

	if _, err := h.verifier.Verify(token); err != nil {
		pagerender.WritePublicPage(w, r, webtemplates.T(loc, "title.login"), lang, loc,
			http.StatusUnauthorized, webtemplates.LoginForm(lang, returnURL, true, loc))
		return
	}

	sessioncookie.Write(w, r, token, h.policy)
	target := returnURL
	if target == "" {
		target = routepath.Dashboard(lang)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, lang := webi18n.ResolveLocalizer(r, nil)
	sessioncookie.Clear(w, r, h.policy)
	http.Redirect(w, r, routepath.Home(lang), http.StatusSeeOther)
}

// sanitizeReturnURL keeps redirects on-site: relative paths only, no
// scheme-relative or absolute URLs.
func sanitizeReturnURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}
	if strings.ContainsAny(raw, "\r\n") {
		return ""
	}
	return raw
}
