package templates

import (
	"github.com/a-h/templ"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

// WorkspacesPage lists every workspace with a switch action for all but
// the current one.
func WorkspacesPage(entities []entity.Entity, currentSlug string, lang string, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "workspaces.heading"))),
	}
	switchAction := routepath.Workspaces(lang, currentSlug) + "/switch"
	items := make([]templ.Component, 0, len(entities))
	for _, ent := range entities {
		typeKey := "workspaces.organizational"
		if ent.Type == entity.TypePersonal {
			typeKey = "workspaces.personal"
		}
		row := []templ.Component{
			el(`<span class="workspace-name">`, `</span>`, text(ent.DisplayName)),
			el(`<span class="workspace-type">`, `</span>`, text(T(loc, typeKey))),
		}
		if ent.Slug == currentSlug {
			row = append(row, el(`<span class="workspace-current" aria-current="true">`, `</span>`, text(ent.Slug)))
		} else {
			row = append(row,
				raw(`<form method="post" action="`+attr(switchAction)+`">`),
				raw(`<input type="hidden" name="slug" value="`+attr(ent.Slug)+`">`),
				el(`<button type="submit">`, `</button>`, text(T(loc, "workspaces.switch"))),
				raw(`</form>`),
			)
		}
		items = append(items, el(`<li>`, `</li>`, row...))
	}
	parts = append(parts, el(`<ul class="workspaces">`, `</ul>`, items...))
	return group(parts...)
}

// MembersPage lists workspace members with their roles.
func MembersPage(members []apiclient.Member, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "members.heading"))),
	}
	if len(members) == 0 {
		parts = append(parts, EmptyState(T(loc, "members.empty")))
		return group(parts...)
	}
	rows := make([]templ.Component, 0, len(members))
	for _, member := range members {
		rows = append(rows, group(
			raw(`<tr>`),
			el(`<td>`, `</td>`, text(member.Email)),
			el(`<td>`, `</td>`, text(member.Role)),
			raw(`</tr>`),
		))
	}
	parts = append(parts,
		raw(`<table class="members"><thead><tr>`),
		el(`<th>`, `</th>`, text(T(loc, "invitations.email"))),
		el(`<th>`, `</th>`, text(T(loc, "members.role"))),
		raw(`</tr></thead>`),
		el(`<tbody>`, `</tbody>`, rows...),
		raw(`</table>`),
	)
	return group(parts...)
}

// InvitationsPage lists pending invitations with revoke actions and an
// invite form.
func InvitationsPage(invitations []apiclient.Invitation, lang string, entitySlug string, loc Localizer) templ.Component {
	parts := []templ.Component{
		el(`<h1>`, `</h1>`, text(T(loc, "invitations.heading"))),
	}
	if len(invitations) == 0 {
		parts = append(parts, EmptyState(T(loc, "invitations.empty")))
	} else {
		revokeAction := routepath.Invitations(lang, entitySlug) + "/revoke"
		items := make([]templ.Component, 0, len(invitations))
		for _, invitation := range invitations {
			items = append(items, el(`<li>`, `</li>`,
				el(`<span class="invitation-email">`, `</span>`, text(invitation.Email)),
				raw(`<form method="post" action="`+attr(revokeAction)+`">`),
				raw(`<input type="hidden" name="token" value="`+attr(invitation.Token)+`">`),
				el(`<button type="submit" class="link">`, `</button>`, text(T(loc, "invitations.revoke"))),
				raw(`</form>`),
			))
		}
		parts = append(parts, el(`<ul class="invitations">`, `</ul>`, items...))
	}
	parts = append(parts,
		raw(`<form method="post" action="`+attr(routepath.Invitations(lang, entitySlug))+`">`),
		el(`<label for="email">`, `</label>`, text(T(loc, "invitations.email"))),
		raw(`<input id="email" name="email" type="email" required>`),
		el(`<button type="submit">`, `</button>`, text(T(loc, "invitations.invite"))),
		raw(`</form>`),
	)
	return group(parts...)
}
