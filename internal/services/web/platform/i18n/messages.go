package i18n

import "github.com/sudobility/whisperly-web/internal/platform/i18n/catalog"

// Translated copy ships as embedded locale catalogs. Loading the default
// bundle registers every message with x/text/message, so the printers
// returned by Printer resolve localized strings without further setup.
var messageBundle = catalog.Default()

// Message looks up one raw catalog string, falling back to the default
// language. Most callers want Printer instead; this exists for code that
// needs the untemplated value.
func Message(code, key string) (string, bool) {
	return messageBundle.Message(code, key)
}
