package templates

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
)

// AnalyticsPage renders the workspace usage summary.
func AnalyticsPage(summary apiclient.UsageSummary, loc Localizer) templ.Component {
	return group(
		el(`<h1>`, `</h1>`, text(T(loc, "analytics.heading"))),
		raw(`<dl class="usage">`),
		usageStat(T(loc, "analytics.translated_words"), strconv.FormatInt(summary.TranslatedWords, 10)),
		usageStat(T(loc, "analytics.api_requests"), strconv.FormatInt(summary.APIRequests, 10)),
		usageStat(T(loc, "analytics.active_projects"), strconv.Itoa(summary.ActiveProjects)),
		raw(`</dl>`),
	)
}

func usageStat(label string, value string) templ.Component {
	return group(
		el(`<dt>`, `</dt>`, text(label)),
		el(`<dd>`, `</dd>`, text(value)),
	)
}

// RateLimitsPage renders consumption against each rate-limit window.
func RateLimitsPage(windows []apiclient.RateLimitWindow, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "ratelimits.heading"))),
	}
	if len(windows) == 0 {
		parts = append(parts, EmptyState(T(loc, "ratelimits.empty")))
		return group(parts...)
	}
	rows := make([]templ.Component, 0, len(windows))
	for _, window := range windows {
		rows = append(rows, group(
			raw(`<tr>`),
			el(`<td>`, `</td>`, text(window.Window)),
			el(`<td>`, `</td>`, text(strconv.FormatInt(window.Used, 10))),
			el(`<td>`, `</td>`, text(strconv.FormatInt(window.Limit, 10))),
			raw(`</tr>`),
		))
	}
	parts = append(parts,
		raw(`<table class="rate-limits"><thead><tr>`),
		el(`<th>`, `</th>`, text(T(loc, "ratelimits.window"))),
		el(`<th>`, `</th>`, text(T(loc, "ratelimits.used"))),
		el(`<th>`, `</th>`, text(T(loc, "ratelimits.limit"))),
		raw(`</tr></thead>`),
		el(`<tbody>`, `</tbody>`, rows...),
		raw(`</table>`),
	)
	return group(parts...)
}

// SubscriptionPage renders the active plan and its entitlements.
func SubscriptionPage(sub apiclient.Subscription, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "subscription.heading"))),
		el(`<p class="plan">`, `</p>`, text(T(loc, "subscription.plan")+": "+sub.Plan)),
	}
	if !sub.RenewsAt.IsZero() {
		parts = append(parts, el(`<p class="renews">`, `</p>`,
			text(T(loc, "subscription.renews")+": "+sub.RenewsAt.Format("2006-01-02"))))
	}
	if len(sub.Entitlements) > 0 {
		items := make([]templ.Component, 0, len(sub.Entitlements))
		for _, entitlement := range sub.Entitlements {
			items = append(items, el(`<li>`, `</li>`, text(entitlement)))
		}
		parts = append(parts, el(`<ul class="entitlements">`, `</ul>`, items...))
	}
	return group(parts...)
}
