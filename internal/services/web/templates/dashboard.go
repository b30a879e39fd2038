package templates

import (
	"github.com/a-h/templ"

	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

// DashboardNoEntities renders the empty-account state shown when the
// backend reports no accessible workspaces.
func DashboardNoEntities(loc Localizer) templ.Component {
	return group(
		el(`<h1>`, `</h1>`, text(T(loc, "dashboard.heading"))),
		EmptyState(T(loc, "dashboard.no_entities")),
	)
}

// EntityOverviewData carries the overview page content.
type EntityOverviewData struct {
	Slug        string
	DisplayName string
	TypeKey     string
}

// EntityOverview renders the per-entity landing page.
func EntityOverview(data EntityOverviewData, lang string, loc Localizer) templ.Component {
	links := []struct {
		key  string
		href string
	}{
		{"nav.projects", routepath.Projects(lang, data.Slug)},
		{"nav.analytics", routepath.Analytics(lang, data.Slug)},
		{"nav.members", routepath.Members(lang, data.Slug)},
	}
	items := make([]templ.Component, 0, len(links))
	for _, link := range links {
		items = append(items, el(`<li><a href="`+attr(link.href)+`">`, `</a></li>`, text(T(loc, link.key))))
	}
	return group(
		el(`<h1>`, `</h1>`, text(data.DisplayName)),
		el(`<p class="entity-type">`, `</p>`, text(T(loc, data.TypeKey))),
		el(`<ul class="quick-links">`, `</ul>`, items...),
	)
}
