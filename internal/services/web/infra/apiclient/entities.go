package apiclient

import (
	"context"
	"net/url"
)

// Entity is a workspace record as reported by the backend.
type Entity struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

// Entities lists the workspaces the user belongs to, in backend order.
func (c *Client) Entities(ctx context.Context, userID string) ([]Entity, error) {
	var entities []Entity
	if err := c.get(ctx, "/v1/entities", userID, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

func entityPath(entitySlug string, rest string) string {
	return "/v1/entities/" + url.PathEscape(entitySlug) + rest
}
