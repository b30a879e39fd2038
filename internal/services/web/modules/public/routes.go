package public

import (
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routepath.HomePattern, h.handleHome)
	mux.HandleFunc(routepath.PricingPattern, h.handlePricing)
	mux.HandleFunc(routepath.PrivacyPattern, h.handlePrivacy)
	mux.HandleFunc(routepath.TermsPattern, h.handleTerms)
	mux.HandleFunc(routepath.CookiesPattern, h.handleCookies)
	mux.HandleFunc(routepath.SitemapPattern, h.handleSitemap)
	mux.HandleFunc(routepath.SettingsPattern, h.handleSettings)
}
