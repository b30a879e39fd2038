// Package i18n defines the closed set of languages the product ships in and
// helpers to map between URL language codes and x/text language tags.
//
// The set is fixed at build time. URL codes are the lower-case forms used as
// the leading path segment of every routed URL.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultCode is the fallback language code when nothing else matches.
const DefaultCode = "en"

var supportedCodes = []string{
	"en",
	"ar",
	"de",
	"es",
	"fr",
	"it",
	"ja",
	"ko",
	"pt",
	"ru",
	"sv",
	"th",
	"uk",
	"vi",
	"zh",
	"zh-hant",
}

var supportedTags = func() []language.Tag {
	tags := make([]language.Tag, 0, len(supportedCodes))
	for _, code := range supportedCodes {
		tags = append(tags, language.Make(code))
	}
	return tags
}()

var matcher = language.NewMatcher(supportedTags)

// Codes returns the supported URL language codes in declaration order.
func Codes() []string {
	out := make([]string, len(supportedCodes))
	copy(out, supportedCodes)
	return out
}

// SupportedTags returns the supported language tags in declaration order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the tag for the default language code.
func DefaultTag() language.Tag {
	return language.Make(DefaultCode)
}

// Canonical normalizes a candidate language code to its supported URL form.
// The bool reports whether the candidate maps to a supported language.
// "de-DE" canonicalizes to "de"; unsupported codes report false.
func Canonical(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	for _, supported := range supportedCodes {
		if code == supported {
			return supported, true
		}
	}
	base, _, _ := strings.Cut(code, "-")
	if base == "" || base == code {
		return "", false
	}
	for _, supported := range supportedCodes {
		if base == supported {
			return supported, true
		}
	}
	return "", false
}

// IsSupported reports whether a candidate code maps to a supported language.
func IsSupported(code string) bool {
	_, ok := Canonical(code)
	return ok
}

// ParseTag parses a language value and resolves it to a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	code, ok := Canonical(value)
	if !ok {
		return language.Und, false
	}
	return language.Make(code), true
}

// MatchTags resolves the closest supported tag for client-preferred tags.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// CodeForTag returns the URL code for a supported tag, or the default code.
func CodeForTag(tag language.Tag) string {
	if code, ok := Canonical(tag.String()); ok {
		return code
	}
	return DefaultCode
}
