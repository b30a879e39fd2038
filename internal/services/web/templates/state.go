package templates

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// LoadingState renders the shared pending-data placeholder.
func LoadingState(loc Localizer) templ.Component {
	return el(
		`<div class="state state-loading" role="status" aria-live="polite">`,
		`</div>`,
		text(T(loc, "dashboard.loading")),
	)
}

// EmptyState renders a neutral no-data message.
func EmptyState(message string) templ.Component {
	return el(`<div class="state state-empty">`, `</div>`, text(message))
}

// AppErrorPageTitle returns the browser title for error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "error.title_not_found")
	}
	return T(loc, "error.title_server_error")
}

// AppErrorState renders the in-shell error fragment for a status code.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	statusCode = normalizeErrorStatus(statusCode)
	headingKey := "error.title_server_error"
	messageKey := "error.message_server_error"
	if statusCode == http.StatusNotFound {
		headingKey = "error.title_not_found"
		messageKey = "error.message_not_found"
	}
	return group(
		raw(`<section class="state state-error" data-status="`+strconv.Itoa(statusCode)+`">`),
		el(`<h1>`, `</h1>`, text(T(loc, headingKey))),
		el(`<p>`, `</p>`, text(T(loc, messageKey))),
		raw(`</section>`),
	)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
