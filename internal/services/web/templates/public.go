package templates

import (
	"github.com/a-h/templ"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

// HomePage renders the marketing landing content.
func HomePage(lang string, loc Localizer) templ.Component {
	return group(
		raw(`<section class="hero">`),
		el(`<h1>`, `</h1>`, text(T(loc, "title.home"))),
		el(`<p class="tagline">`, `</p>`, text(T(loc, "home.tagline"))),
		el(`<a class="cta" href="`+attr(routepath.Login(lang))+`">`, `</a>`, text(T(loc, "home.sign_in"))),
		raw(`</section>`),
	)
}

// PricingPage renders the static plan comparison.
func PricingPage(lang string, loc Localizer) templ.Component {
	return group(
		el(`<h1>`, `</h1>`, text(T(loc, "title.pricing"))),
		raw(`<ul class="plans">`),
		el(`<li>`, `</li>`, text(T(loc, "pricing.free"))),
		el(`<li>`, `</li>`, text(T(loc, "pricing.pro"))),
		el(`<li>`, `</li>`, text(T(loc, "pricing.enterprise"))),
		raw(`</ul>`),
	)
}

// LegalPage renders a titled legal text body.
func LegalPage(headingKey string, bodyKey string, loc Localizer) templ.Component {
	return group(
		el(`<h1>`, `</h1>`, text(T(loc, headingKey))),
		el(`<p>`, `</p>`, text(T(loc, bodyKey))),
	)
}

// SitemapPage renders links to every public page in the active language.
func SitemapPage(lang string, loc Localizer) templ.Component {
	entries := []struct {
		key  string
		href string
	}{
		{"title.home", routepath.Home(lang)},
		{"title.pricing", routepath.Pricing(lang)},
		{"title.login", routepath.Login(lang)},
		{"title.privacy", routepath.Privacy(lang)},
		{"title.terms", routepath.Terms(lang)},
		{"title.cookies", routepath.Cookies(lang)},
		{"title.settings", routepath.Settings(lang)},
	}
	items := make([]templ.Component, 0, len(entries))
	for _, entry := range entries {
		items = append(items, el(`<li><a href="`+attr(entry.href)+`">`, `</a></li>`, text(T(loc, entry.key))))
	}
	return group(
		el(`<h1>`, `</h1>`, text(T(loc, "title.sitemap"))),
		el(`<ul class="sitemap">`, `</ul>`, items...),
	)
}

// LanguageSettingsPage renders language links that switch the current
// public path into each supported language.
func LanguageSettingsPage(lang string, currentPath string, loc Localizer) templ.Component {
	items := make([]templ.Component, 0, len(platformi18n.Codes()))
	for _, code := range platformi18n.Codes() {
		href := routepath.WithLanguage(currentPath, true, code)
		open := `<li><a href="` + attr(href) + `" hreflang="` + attr(code) + `"`
		if code == lang {
			open += ` aria-current="true"`
		}
		open += `>`
		items = append(items, el(open, `</a></li>`, text(code)))
	}
	return group(
		el(`<h1>`, `</h1>`, text(T(loc, "title.settings"))),
		el(`<h2>`, `</h2>`, text(T(loc, "settings.language"))),
		el(`<ul class="languages">`, `</ul>`, items...),
	)
}
