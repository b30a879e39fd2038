package dashboard

import (
	"context"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
)

// EntityLister is the backend surface this module reads. Satisfied by both
// the raw API client and the cached entity-list wrapper.
type EntityLister interface {
	Entities(ctx context.Context, userID string) ([]apiclient.Entity, error)
}

// APIGateway adapts the backend entity list to the module's view model.
type APIGateway struct {
	lists EntityLister
}

// NewAPIGateway returns a gateway backed by the given lister.
func NewAPIGateway(lists EntityLister) APIGateway {
	return APIGateway{lists: lists}
}

// Entities lists the user's workspaces in backend order.
func (g APIGateway) Entities(ctx context.Context, userID string) ([]entity.Entity, error) {
	records, err := g.lists.Entities(ctx, userID)
	if err != nil {
		return nil, err
	}
	entities := make([]entity.Entity, 0, len(records))
	for _, record := range records {
		entities = append(entities, entity.Entity{
			Slug:        record.Slug,
			DisplayName: record.DisplayName,
			Type:        entityType(record.Type),
		})
	}
	return entities, nil
}

func entityType(raw string) entity.Type {
	if raw == string(entity.TypePersonal) {
		return entity.TypePersonal
	}
	return entity.TypeOrganizational
}
