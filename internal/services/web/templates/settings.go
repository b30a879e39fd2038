package templates

import (
	"github.com/a-h/templ"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

// EntitySettingsPage renders the workspace settings form with the
// interface language picker.
func EntitySettingsPage(entitySlug string, lang string, loc Localizer) templ.Component {
	options := make([]templ.Component, 0, len(platformi18n.Codes()))
	for _, code := range platformi18n.Codes() {
		open := `<option value="` + attr(code) + `"`
		if code == lang {
			open += ` selected`
		}
		open += `>`
		options = append(options, el(open, `</option>`, text(code)))
	}
	action := routepath.EntitySettings(lang, entitySlug) + "/locale"
	return group(
		el(`<h1>`, `</h1>`, text(T(loc, "settings.heading"))),
		raw(`<form method="post" action="`+attr(action)+`">`),
		el(`<label for="language">`, `</label>`, text(T(loc, "settings.language"))),
		el(`<select id="language" name="language">`, `</select>`, options...),
		el(`<button type="submit">`, `</button>`, text(T(loc, "settings.save"))),
		raw(`</form>`),
	)
}
