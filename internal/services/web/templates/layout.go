package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/sudobility/whisperly-web/internal/platform/branding"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

// AppLayoutOptions carries page chrome state for authenticated dashboard pages.
type AppLayoutOptions struct {
	Title       string
	Lang        string
	Loc         Localizer
	EntitySlug  string
	EntityName  string
	UserName    string
	CurrentPath string
}

// AppLayout renders the dashboard shell around its children: document head,
// top bar with the active entity and sign-out control, and the entity
// sidebar when an entity is selected.
func AppLayout(opts AppLayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		page := group(
			documentHead(opts.Title, opts.Lang),
			raw(`<body class="app">`),
			appTopBar(opts),
			raw(`<div class="app-body">`),
			appSidebar(opts),
			el(`<main id="content" class="app-main">`, `</main>`, children),
			raw(`</div></body></html>`),
		)
		return page.Render(ctx, w)
	})
}

// PublicLayout renders the marketing shell around its children.
func PublicLayout(title string, lang string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		page := group(
			documentHead(title, lang),
			raw(`<body class="public">`),
			publicTopBar(lang, loc),
			el(`<main id="content" class="public-main">`, `</main>`, children),
			publicFooter(lang, loc),
			raw(`</body></html>`),
		)
		return page.Render(ctx, w)
	})
}

func documentHead(title string, lang string) templ.Component {
	return group(
		raw(`<!doctype html><html lang="`+attr(lang)+`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`),
		el(`<title>`, `</title>`, text(ComposePageTitle(title))),
		raw(`<link rel="stylesheet" href="/static/app.css"></head>`),
	)
}

func appTopBar(opts AppLayoutOptions) templ.Component {
	parts := []templ.Component{
		raw(`<header class="app-topbar">`),
		el(`<a class="brand" href="`+attr(routepath.Dashboard(opts.Lang))+`">`, `</a>`, text(branding.AppName)),
	}
	if opts.EntityName != "" {
		parts = append(parts, el(`<span class="entity-name">`, `</span>`, text(opts.EntityName)))
	}
	if opts.UserName != "" {
		parts = append(parts, el(`<span class="user-name">`, `</span>`, text(opts.UserName)))
	}
	parts = append(parts,
		raw(`<form method="post" action="`+attr(routepath.Logout(opts.Lang))+`">`),
		el(`<button type="submit" class="link">`, `</button>`, text(T(opts.Loc, "nav.sign_out"))),
		raw(`</form></header>`),
	)
	return group(parts...)
}

type navEntry struct {
	key  string
	href string
}

func appSidebar(opts AppLayoutOptions) templ.Component {
	if opts.EntitySlug == "" {
		return raw("")
	}
	entries := []navEntry{
		{"nav.overview", routepath.Entity(opts.Lang, opts.EntitySlug)},
		{"nav.projects", routepath.Projects(opts.Lang, opts.EntitySlug)},
		{"nav.analytics", routepath.Analytics(opts.Lang, opts.EntitySlug)},
		{"nav.rate_limits", routepath.RateLimits(opts.Lang, opts.EntitySlug)},
		{"nav.subscription", routepath.Subscription(opts.Lang, opts.EntitySlug)},
		{"nav.workspaces", routepath.Workspaces(opts.Lang, opts.EntitySlug)},
		{"nav.members", routepath.Members(opts.Lang, opts.EntitySlug)},
		{"nav.invitations", routepath.Invitations(opts.Lang, opts.EntitySlug)},
		{"nav.settings", routepath.EntitySettings(opts.Lang, opts.EntitySlug)},
	}
	items := make([]templ.Component, 0, len(entries))
	for _, entry := range entries {
		open := `<li><a href="` + attr(entry.href) + `"`
		if navEntryActive(opts.CurrentPath, entry.href) {
			open += ` aria-current="page"`
		}
		open += `>`
		items = append(items, el(open, `</a></li>`, text(T(opts.Loc, entry.key))))
	}
	return el(`<nav class="app-sidebar"><ul>`, `</ul></nav>`, items...)
}

// navEntryActive reports whether href is the current page or one of its
// descendants. The overview entry only highlights on an exact match so it
// does not stay lit for every entity page.
func navEntryActive(currentPath string, href string) bool {
	if currentPath == "" {
		return false
	}
	if currentPath == href {
		return true
	}
	if strings.Count(href, "/") <= 3 {
		return false
	}
	return strings.HasPrefix(currentPath, href+"/")
}

func publicTopBar(lang string, loc Localizer) templ.Component {
	return group(
		raw(`<header class="public-topbar">`),
		el(`<a class="brand" href="`+attr(routepath.Home(lang))+`">`, `</a>`, text(branding.AppName)),
		el(`<nav><a href="`+attr(routepath.Pricing(lang))+`">`, `</a>`, text(T(loc, "home.pricing"))),
		el(`<a href="`+attr(routepath.Login(lang))+`">`, `</a></nav>`, text(T(loc, "home.sign_in"))),
		raw(`</header>`),
	)
}

func publicFooter(lang string, loc Localizer) templ.Component {
	return group(
		raw(`<footer class="public-footer">`),
		el(`<span>`, `</span>`, text(branding.CompanyName)),
		el(`<a href="`+attr(routepath.Privacy(lang))+`">`, `</a>`, text(T(loc, "title.privacy"))),
		el(`<a href="`+attr(routepath.Terms(lang))+`">`, `</a>`, text(T(loc, "title.terms"))),
		el(`<a href="`+attr(routepath.Cookies(lang))+`">`, `</a>`, text(T(loc, "title.cookies"))),
		raw(`</footer>`),
	)
}
