package workspace

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
)

// WorkspaceGateway is the backend surface for workspace membership reads
// and writes.
type WorkspaceGateway interface {
	Entities(ctx context.Context, userID string) ([]entity.Entity, error)
	Members(ctx context.Context, userID string, entitySlug string) ([]apiclient.Member, error)
	Invitations(ctx context.Context, userID string, entitySlug string) ([]apiclient.Invitation, error)
	CreateInvitation(ctx context.Context, userID string, entitySlug string, create apiclient.InvitationCreate) error
	RevokeInvitation(ctx context.Context, userID string, entitySlug string, token string) error
}

type unavailableGateway struct{}

func unavailableErr() error {
	return apperrors.EK(apperrors.KindUnavailable, "error.web.entities_unavailable", "workspace service is not configured")
}

func (unavailableGateway) Entities(context.Context, string) ([]entity.Entity, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) Members(context.Context, string, string) ([]apiclient.Member, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) Invitations(context.Context, string, string) ([]apiclient.Invitation, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) CreateInvitation(context.Context, string, string, apiclient.InvitationCreate) error {
	return unavailableErr()
}

func (unavailableGateway) RevokeInvitation(context.Context, string, string, string) error {
	return unavailableErr()
}

type service struct {
	gateway WorkspaceGateway
}

func newService(gateway WorkspaceGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) entities(ctx context.Context, userID string) ([]entity.Entity, error) {
	return s.gateway.Entities(ctx, userID)
}

// switchTo validates the target workspace against the accessible list and
// returns it. A slug the user cannot access reads as not found.
func (s service) switchTo(ctx context.Context, userID string, slug string) (entity.Entity, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entity.Entity{}, apperrors.E(apperrors.KindInvalidInput, "workspace slug is required")
	}
	entities, err := s.gateway.Entities(ctx, userID)
	if err != nil {
		return entity.Entity{}, err
	}
	for _, candidate := range entities {
		if candidate.Slug == slug {
			return candidate, nil
		}
	}
	return entity.Entity{}, apperrors.E(apperrors.KindNotFound, "workspace not found")
}

func (s service) members(ctx context.Context, userID string, entitySlug string) ([]apiclient.Member, error) {
	return s.gateway.Members(ctx, userID, entitySlug)
}

func (s service) invitations(ctx context.Context, userID string, entitySlug string) ([]apiclient.Invitation, error) {
	return s.gateway.Invitations(ctx, userID, entitySlug)
}

// invite mints the invitation token server-side so the backend never
// trusts client-supplied tokens.
func (s service) invite(ctx context.Context, userID string, entitySlug string, email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.E(apperrors.KindInvalidInput, "a valid email is required")
	}
	return s.gateway.CreateInvitation(ctx, userID, entitySlug, apiclient.InvitationCreate{
		Token: uuid.NewString(),
		Email: email,
	})
}

func (s service) revoke(ctx context.Context, userID string, entitySlug string, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.E(apperrors.KindInvalidInput, "invitation token is required")
	}
	return s.gateway.RevokeInvitation(ctx, userID, entitySlug, token)
}
