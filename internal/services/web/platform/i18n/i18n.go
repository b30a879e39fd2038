// Package i18n resolves the active language for web requests.
//
// The precedence order is fixed: a supported language code in the leading
// URL segment wins, then the persisted preference, then the browser's
// primary Accept-Language tag with any region stripped, then the default.
// Resolution is pure; only ConfirmLanguage writes the preference back.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/prefs"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// PathLanguage returns the canonical supported code carried by the leading
// URL segment, when there is one.
func PathLanguage(urlPath string) (string, bool) {
	urlPath = strings.TrimPrefix(strings.TrimSpace(urlPath), "/")
	segment, _, _ := strings.Cut(urlPath, "/")
	if segment == "" {
		return "", false
	}
	return platformi18n.Canonical(segment)
}

// ResolveCode computes the active language code for a request path, a
// persisted preference store, and the raw Accept-Language header value.
// It always returns a supported code.
func ResolveCode(urlPath string, store prefs.Store, acceptLanguage string) string {
	if code, ok := PathLanguage(urlPath); ok {
		return code
	}
	if store != nil {
		if stored, ok := store.Get(prefs.LanguageKey); ok {
			if code, ok := platformi18n.Canonical(stored); ok {
				return code
			}
		}
	}
	if code, ok := browserLanguage(acceptLanguage); ok {
		return code
	}
	return platformi18n.DefaultCode
}

// ResolveRequest resolves the active language code for a request.
func ResolveRequest(r *http.Request, store prefs.Store) string {
	if r == nil {
		return platformi18n.DefaultCode
	}
	return ResolveCode(r.URL.Path, store, r.Header.Get("Accept-Language"))
}

// ConfirmLanguage persists code as the preferred language when it differs
// from the stored value. Repeat confirmations are no-ops.
func ConfirmLanguage(store prefs.Store, code string) {
	if store == nil {
		return
	}
	code, ok := platformi18n.Canonical(code)
	if !ok {
		return
	}
	if stored, ok := store.Get(prefs.LanguageKey); ok && stored == code {
		return
	}
	store.Set(prefs.LanguageKey, code)
}

// Printer returns a message printer for a language code.
func Printer(code string) *message.Printer {
	tag, ok := platformi18n.ParseTag(code)
	if !ok {
		tag = platformi18n.DefaultTag()
	}
	return message.NewPrinter(tag)
}

// browserLanguage maps the primary Accept-Language tag to a supported code.
func browserLanguage(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.TrimSpace(first)
	if first == "" || first == "*" {
		return "", false
	}
	return platformi18n.Canonical(first)
}

// SupportedTags exposes the product language set for option rendering.
func SupportedTags() []language.Tag {
	return platformi18n.SupportedTags()
}
