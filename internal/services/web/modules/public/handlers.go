package public

import (
	"net/http"

	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/pagerender"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"

	"github.com/a-h/templ"
)

type handlers struct{}

func newHandlers() handlers {
	return handlers{}
}

func (handlers) writePage(w http.ResponseWriter, r *http.Request, titleKey string, body templ.Component, loc webtemplates.Localizer, lang string) {
	pagerender.WritePublicPage(w, r, webtemplates.T(loc, titleKey), lang, loc, http.StatusOK, body)
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	h.writePage(w, r, "title.home", webtemplates.HomePage(lang, loc), loc, lang)
}

func (h handlers) handlePricing(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	h.writePage(w, r, "title.pricing", webtemplates.PricingPage(lang, loc), loc, lang)
}

func (h handlers) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	h.writePage(w, r, "title.privacy", webtemplates.LegalPage("title.privacy", "legal.privacy", loc), loc, lang)
}

func (h handlers) handleTerms(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	h.writePage(w, r, "title.terms", webtemplates.LegalPage("title.terms", "legal.terms", loc), loc, lang)
}

func (h handlers) handleCookies(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	h.writePage(w, r, "title.cookies", webtemplates.LegalPage("title.cookies", "legal.cookies", loc), loc, lang)
}

func (h handlers) handleSitemap(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	h.writePage(w, r, "title.sitemap", webtemplates.SitemapPage(lang, loc), loc, lang)
}

func (h handlers) handleSettings(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(r, nil)
	h.writePage(w, r, "title.settings", webtemplates.LanguageSettingsPage(lang, r.URL.Path, loc), loc, lang)
}
