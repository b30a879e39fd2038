package workspace

import (
	"context"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
)

// EntityLister is the entity-list read surface. Satisfied by both the raw
// API client and the cached entity-list wrapper.
type EntityLister interface {
	Entities(ctx context.Context, userID string) ([]apiclient.Entity, error)
}

// MembershipAPI is the backend membership surface of the API client.
type MembershipAPI interface {
	Members(ctx context.Context, userID string, entitySlug string) ([]apiclient.Member, error)
	Invitations(ctx context.Context, userID string, entitySlug string) ([]apiclient.Invitation, error)
	CreateInvitation(ctx context.Context, userID string, entitySlug string, create apiclient.InvitationCreate) error
	RevokeInvitation(ctx context.Context, userID string, entitySlug string, token string) error
}

// Invalidator drops a cached entity list after membership writes.
type Invalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// APIGateway adapts the backend membership API to the module's gateway.
type APIGateway struct {
	lists       EntityLister
	api         MembershipAPI
	invalidator Invalidator
}

// NewAPIGateway returns a gateway over the given lister and membership
// API. The invalidator may be nil when entity lists are not cached.
func NewAPIGateway(lists EntityLister, api MembershipAPI, invalidator Invalidator) APIGateway {
	return APIGateway{lists: lists, api: api, invalidator: invalidator}
}

// Entities lists the user's workspaces in backend order.
func (g APIGateway) Entities(ctx context.Context, userID string) ([]entity.Entity, error) {
	records, err := g.lists.Entities(ctx, userID)
	if err != nil {
		return nil, err
	}
	entities := make([]entity.Entity, 0, len(records))
	for _, record := range records {
		entityType := entity.TypeOrganizational
		if record.Type == string(entity.TypePersonal) {
			entityType = entity.TypePersonal
		}
		entities = append(entities, entity.Entity{
			Slug:        record.Slug,
			DisplayName: record.DisplayName,
			Type:        entityType,
		})
	}
	return entities, nil
}

func (g APIGateway) Members(ctx context.Context, userID string, entitySlug string) ([]apiclient.Member, error) {
	return g.api.Members(ctx, userID, entitySlug)
}

func (g APIGateway) Invitations(ctx context.Context, userID string, entitySlug string) ([]apiclient.Invitation, error) {
	return g.api.Invitations(ctx, userID, entitySlug)
}

func (g APIGateway) CreateInvitation(ctx context.Context, userID string, entitySlug string, create apiclient.InvitationCreate) error {
	if err := g.api.CreateInvitation(ctx, userID, entitySlug, create); err != nil {
		return err
	}
	g.invalidate(ctx, userID)
	return nil
}

func (g APIGateway) RevokeInvitation(ctx context.Context, userID string, entitySlug string, token string) error {
	if err := g.api.RevokeInvitation(ctx, userID, entitySlug, token); err != nil {
		return err
	}
	g.invalidate(ctx, userID)
	return nil
}

func (g APIGateway) invalidate(ctx context.Context, userID string) {
	if g.invalidator == nil {
		return
	}
	g.invalidator.Invalidate(ctx, userID)
}
