package dashboard

import (
	"context"
	"strings"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
)

// EntityGateway lists the workspaces one user can access.
type EntityGateway interface {
	Entities(ctx context.Context, userID string) ([]entity.Entity, error)
}

type unavailableGateway struct{}

func (unavailableGateway) Entities(context.Context, string) ([]entity.Entity, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.web.entities_unavailable", "entity service is not configured")
}

type service struct {
	gateway EntityGateway
}

func newService(gateway EntityGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// resolveDefault picks the entity a bare dashboard visit should land on.
// The bool is false when the user has no entities at all; gateway errors
// pass through untouched so handlers can render the right error state.
func (s service) resolveDefault(ctx context.Context, userID string, lastUsedSlug string) (entity.Entity, bool, error) {
	entities, err := s.gateway.Entities(ctx, userID)
	if err != nil {
		return entity.Entity{}, false, err
	}
	resolved, ok := entity.Resolve(entities, lastUsedSlug)
	return resolved, ok, nil
}

// find returns the accessible entity with the given slug.
func (s service) find(ctx context.Context, userID string, slug string) (entity.Entity, bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entity.Entity{}, false, nil
	}
	entities, err := s.gateway.Entities(ctx, userID)
	if err != nil {
		return entity.Entity{}, false, err
	}
	for _, candidate := range entities {
		if candidate.Slug == slug {
			return candidate, true, nil
		}
	}
	return entity.Entity{}, false, nil
}
