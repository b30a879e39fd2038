package apiclient

import "context"

// UsageSummary aggregates translation activity for a workspace.
type UsageSummary struct {
	APIRequests     int64 `json:"api_requests"`
	TranslatedWords int64 `json:"translated_words"`
	ActiveProjects  int   `json:"active_projects"`
}

// RateLimitWindow reports consumption against one rate-limit window.
type RateLimitWindow struct {
	Window string `json:"window"`
	Used   int64  `json:"used"`
	Limit  int64  `json:"limit"`
}

// Usage fetches the translation usage summary for a workspace.
func (c *Client) Usage(ctx context.Context, userID string, entitySlug string) (UsageSummary, error) {
	var summary UsageSummary
	err := c.get(ctx, entityPath(entitySlug, "/analytics/usage"), userID, &summary)
	return summary, err
}

// RateLimits lists rate-limit windows for a workspace.
func (c *Client) RateLimits(ctx context.Context, userID string, entitySlug string) ([]RateLimitWindow, error) {
	var windows []RateLimitWindow
	if err := c.get(ctx, entityPath(entitySlug, "/rate-limits"), userID, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}
