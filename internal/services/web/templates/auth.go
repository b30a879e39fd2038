package templates

import (
	"github.com/a-h/templ"

	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

// LoginForm renders the sign-in form. returnURL is carried through the
// submit so a successful sign-in lands back on the page that required it.
func LoginForm(lang string, returnURL string, failed bool, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "login.heading"))),
	}
	if failed {
		parts = append(parts, el(`<p class="form-error" role="alert">`, `</p>`, text(T(loc, "login.failed"))))
	}
	parts = append(parts,
		raw(`<form method="post" action="`+attr(routepath.Login(lang))+`">`),
		el(`<label for="token">`, `</label>`, text(T(loc, "login.token"))),
		raw(`<input id="token" name="token" type="password" autocomplete="off" required>`),
	)
	if returnURL != "" {
		parts = append(parts, raw(`<input type="hidden" name="`+attr(routepath.ReturnURLKey)+`" value="`+attr(returnURL)+`">`))
	}
	parts = append(parts,
		el(`<button type="submit">`, `</button>`, text(T(loc, "login.submit"))),
		raw(`</form>`),
	)
	return el(`<section class="login">`, `</section>`, parts...)
}

// LoginUnavailable renders the static sign-in outage notice.
func LoginUnavailable(loc Localizer) templ.Component {
	return el(`<section class="login"><p class="form-error">`, `</p></section>`, text(T(loc, "login.unavailable")))
}
