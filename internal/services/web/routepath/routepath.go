// Package routepath stores canonical HTTP paths for web modules.
//
// Every routed URL carries a leading language code segment. Builders take
// the active language code and return fully qualified paths; pattern
// constants are the ServeMux registration forms with wildcards.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"

	// ReturnURLKey carries the originally requested path through the
	// login redirect.
	ReturnURLKey = "returnUrl"

	// LangPattern matches the bare language root, LangRestPattern the
	// rest of the language-prefixed route tree.
	LangPattern     = "/{lang}"
	LangRestPattern = "/{lang}/{rest...}"

	HomePattern     = "GET /{lang}"
	LoginPattern    = "/{lang}/login"
	LogoutPattern   = "POST /{lang}/logout"
	PricingPattern  = "GET /{lang}/pricing"
	PrivacyPattern  = "GET /{lang}/privacy"
	TermsPattern    = "GET /{lang}/terms"
	CookiesPattern  = "GET /{lang}/cookies"
	SitemapPattern  = "GET /{lang}/sitemap"
	SettingsPattern = "GET /{lang}/settings"

	DashboardPattern       = "GET /{lang}/dashboard"
	EntityPattern          = "GET /{lang}/dashboard/{entitySlug}"
	EntityRestPattern      = "/{lang}/dashboard/{entitySlug}/{rest...}"
	ProjectsPattern        = "GET /{lang}/dashboard/{entitySlug}/projects"
	ProjectNewPattern      = "GET /{lang}/dashboard/{entitySlug}/projects/new"
	ProjectCreatePattern   = "POST /{lang}/dashboard/{entitySlug}/projects"
	ProjectPattern         = "GET /{lang}/dashboard/{entitySlug}/projects/{projectID}"
	DictionaryPattern      = "GET /{lang}/dashboard/{entitySlug}/projects/{projectID}/dictionary"
	DictionaryAddPattern   = "POST /{lang}/dashboard/{entitySlug}/projects/{projectID}/dictionary"
	DictionaryDropPattern  = "POST /{lang}/dashboard/{entitySlug}/projects/{projectID}/dictionary/delete"
	AnalyticsPattern       = "GET /{lang}/dashboard/{entitySlug}/analytics"
	RateLimitsPattern      = "GET /{lang}/dashboard/{entitySlug}/rate-limits"
	SubscriptionPattern    = "GET /{lang}/dashboard/{entitySlug}/subscription"
	WorkspacesPattern      = "GET /{lang}/dashboard/{entitySlug}/workspaces"
	WorkspaceSwitchPattern = "POST /{lang}/dashboard/{entitySlug}/workspaces/switch"
	MembersPattern         = "GET /{lang}/dashboard/{entitySlug}/members"
	InvitationsPattern     = "GET /{lang}/dashboard/{entitySlug}/invitations"
	InviteCreatePattern    = "POST /{lang}/dashboard/{entitySlug}/invitations"
	InviteRevokePattern    = "POST /{lang}/dashboard/{entitySlug}/invitations/revoke"
	EntitySettingsPattern  = "GET /{lang}/dashboard/{entitySlug}/settings"
	EntityLocalePattern    = "POST /{lang}/dashboard/{entitySlug}/settings/locale"
)

// Home returns the public landing route for a language.
func Home(lang string) string {
	return "/" + escapeSegment(lang)
}

// Login returns the login route for a language.
func Login(lang string) string {
	return Home(lang) + "/login"
}

// LoginWithReturn returns the login route carrying a return URL.
func LoginWithReturn(lang string, returnURL string) string {
	returnURL = strings.TrimSpace(returnURL)
	if returnURL == "" {
		return Login(lang)
	}
	return Login(lang) + "?" + ReturnURLKey + "=" + url.QueryEscape(returnURL)
}

// Logout returns the logout route for a language.
func Logout(lang string) string {
	return Home(lang) + "/logout"
}

// Pricing returns the public pricing route.
func Pricing(lang string) string { return Home(lang) + "/pricing" }

// Privacy returns the privacy policy route.
func Privacy(lang string) string { return Home(lang) + "/privacy" }

// Terms returns the terms-of-service route.
func Terms(lang string) string { return Home(lang) + "/terms" }

// Cookies returns the cookie policy route.
func Cookies(lang string) string { return Home(lang) + "/cookies" }

// Sitemap returns the sitemap route.
func Sitemap(lang string) string { return Home(lang) + "/sitemap" }

// Settings returns the public (signed-out) settings route.
func Settings(lang string) string { return Home(lang) + "/settings" }

// Dashboard returns the entity-agnostic dashboard entry route.
func Dashboard(lang string) string {
	return Home(lang) + "/dashboard"
}

// Entity returns the entity-scoped dashboard overview route.
func Entity(lang string, entitySlug string) string {
	return Dashboard(lang) + "/" + escapeSegment(entitySlug)
}

// Projects returns the entity projects route.
func Projects(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/projects"
}

// ProjectNew returns the new-project form route.
func ProjectNew(lang string, entitySlug string) string {
	return Projects(lang, entitySlug) + "/new"
}

// Project returns the project detail route.
func Project(lang string, entitySlug string, projectID string) string {
	return Projects(lang, entitySlug) + "/" + escapeSegment(projectID)
}

// Dictionary returns the project glossary route.
func Dictionary(lang string, entitySlug string, projectID string) string {
	return Project(lang, entitySlug, projectID) + "/dictionary"
}

// Analytics returns the entity analytics route.
func Analytics(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/analytics"
}

// RateLimits returns the entity rate-limit route.
func RateLimits(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/rate-limits"
}

// Subscription returns the entity subscription route.
func Subscription(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/subscription"
}

// Workspaces returns the entity workspaces route.
func Workspaces(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/workspaces"
}

// Members returns the entity members route.
func Members(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/members"
}

// Invitations returns the entity invitations route.
func Invitations(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/invitations"
}

// EntitySettings returns the entity settings route.
func EntitySettings(lang string, entitySlug string) string {
	return Entity(lang, entitySlug) + "/settings"
}

// WithLanguage rewrites a full request path (path plus optional query and
// fragment) so its leading segment is the provided language code. A path
// without a recognized language prefix gains one. The root path maps to the
// bare language root with no trailing slash.
func WithLanguage(fullPath string, hadLangPrefix bool, lang string) string {
	fullPath = strings.TrimSpace(fullPath)
	if fullPath == "" || !strings.HasPrefix(fullPath, "/") {
		fullPath = "/"
	}
	rest := fullPath
	if hadLangPrefix {
		trimmed := strings.TrimPrefix(fullPath, "/")
		if idx := strings.IndexAny(trimmed, "/?#"); idx >= 0 {
			rest = trimmed[idx:]
		} else {
			rest = ""
		}
	}
	if rest == "/" {
		rest = ""
	}
	if strings.HasPrefix(rest, "/?") || strings.HasPrefix(rest, "/#") {
		rest = rest[1:]
	}
	return Home(lang) + rest
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
