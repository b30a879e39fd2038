package apiclient

import (
	"context"
	"net/url"
	"time"
)

// Member is a workspace member record.
type Member struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Invitation is a pending workspace invitation.
type Invitation struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// InvitationCreate carries the fields needed to invite a member.
type InvitationCreate struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Members lists the members of a workspace.
func (c *Client) Members(ctx context.Context, userID string, entitySlug string) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, entityPath(entitySlug, "/members"), userID, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Invitations lists pending invitations for a workspace.
func (c *Client) Invitations(ctx context.Context, userID string, entitySlug string) ([]Invitation, error) {
	var invitations []Invitation
	if err := c.get(ctx, entityPath(entitySlug, "/invitations"), userID, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// CreateInvitation records a pending invitation with a caller-minted token.
func (c *Client) CreateInvitation(ctx context.Context, userID string, entitySlug string, create InvitationCreate) error {
	return c.post(ctx, entityPath(entitySlug, "/invitations"), userID, create, nil)
}

// RevokeInvitation deletes a pending invitation by token.
func (c *Client) RevokeInvitation(ctx context.Context, userID string, entitySlug string, token string) error {
	return c.delete(ctx, entityPath(entitySlug, "/invitations/"+url.PathEscape(token)), userID)
}
