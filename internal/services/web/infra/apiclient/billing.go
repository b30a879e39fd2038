package apiclient

import (
	"context"
	"time"
)

// Subscription reports the active plan for a workspace.
type Subscription struct {
	Plan         string    `json:"plan"`
	RenewsAt     time.Time `json:"renews_at"`
	Entitlements []string  `json:"entitlements"`
}

// Subscription fetches the active subscription for a workspace.
func (c *Client) Subscription(ctx context.Context, userID string, entitySlug string) (Subscription, error) {
	var sub Subscription
	err := c.get(ctx, entityPath(entitySlug, "/subscription"), userID, &sub)
	return sub, err
}
