package workspace

import (
	"context"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
)

type fakeGateway struct {
	entities    []entity.Entity
	members     []apiclient.Member
	invitations []apiclient.Invitation
	err         error

	invited []apiclient.InvitationCreate
	revoked []string
}

func (f *fakeGateway) Entities(context.Context, string) ([]entity.Entity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entities, nil
}

func (f *fakeGateway) Members(context.Context, string, string) ([]apiclient.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

func (f *fakeGateway) Invitations(context.Context, string, string) ([]apiclient.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.invitations, nil
}

func (f *fakeGateway) CreateInvitation(_ context.Context, _ string, _ string, create apiclient.InvitationCreate) error {
	if f.err != nil {
		return f.err
	}
	f.invited = append(f.invited, create)
	return nil
}

func (f *fakeGateway) RevokeInvitation(_ context.Context, _ string, _ string, token string) error {
	if f.err != nil {
		return f.err
	}
	f.revoked = append(f.revoked, token)
	return nil
}
