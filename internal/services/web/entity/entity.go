// Package entity models the account-scoping tenant a dashboard session
// operates in and the default-selection rule applied when a user lands on
// an entity-agnostic entry point.
package entity

import "strings"

// Type distinguishes personal from organizational entities.
type Type string

const (
	TypePersonal       Type = "personal"
	TypeOrganizational Type = "organizational"
)

// Entity is one workspace/tenant the authenticated user can access. The
// backend client converts its wire shape into this type at the boundary so
// resolver logic never depends on collaborator payloads.
type Entity struct {
	Slug        string
	DisplayName string
	Type        Type
}

// Resolve picks the default entity for a dashboard session.
//
// Order: the entity matching the persisted last-used slug when it is still
// accessible, else the personal entity, else the first entity in backend
// order. A stale last-used slug is recovered silently. The bool is false
// only when the list is empty.
func Resolve(entities []Entity, lastUsedSlug string) (Entity, bool) {
	if len(entities) == 0 {
		return Entity{}, false
	}
	lastUsedSlug = strings.TrimSpace(lastUsedSlug)
	if lastUsedSlug != "" {
		for _, candidate := range entities {
			if candidate.Slug == lastUsedSlug {
				return candidate, true
			}
		}
	}
	for _, candidate := range entities {
		if candidate.Type == TypePersonal {
			return candidate, true
		}
	}
	return entities[0], true
}
