// Package cache provides a read-through cache for backend entity lists.
//
// Workspace membership changes rarely but is read on every dashboard
// request, so the list is cached per user with a short TTL. Cache failures
// degrade to direct backend reads; the cache never masks a backend error.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	webstorage "github.com/sudobility/whisperly-web/internal/services/web/storage"
)

// DefaultTTL bounds how stale a cached entity list may be served.
const DefaultTTL = 30 * time.Second

// EntitySource lists workspaces for a user from the backend.
type EntitySource interface {
	Entities(ctx context.Context, userID string) ([]apiclient.Entity, error)
}

// EntityLists serves entity lists through the persistent cache.
type EntityLists struct {
	source EntitySource
	store  webstorage.Store
	ttl    time.Duration
	now    func() time.Time
}

// NewEntityLists wraps source with a cache backed by store. A nil store
// disables caching and every read goes to the source.
func NewEntityLists(source EntitySource, store webstorage.Store, ttl time.Duration) *EntityLists {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &EntityLists{source: source, store: store, ttl: ttl, now: time.Now}
}

// Entities returns the user's workspaces, preferring a fresh cached copy.
func (c *EntityLists) Entities(ctx context.Context, userID string) ([]apiclient.Entity, error) {
	if c.store != nil {
		if entry, found, err := c.store.GetEntityList(ctx, userID); err == nil && found {
			if entry.ExpiresAt.After(c.now()) {
				var cached []apiclient.Entity
				if err := json.Unmarshal(entry.PayloadJSON, &cached); err == nil {
					return cached, nil
				}
			}
		}
	}

	entities, err := c.source.Entities(ctx, userID)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if payload, err := json.Marshal(entities); err == nil {
			now := c.now().UTC()
			_ = c.store.PutEntityList(ctx, webstorage.EntityListEntry{
				UserID:      userID,
				PayloadJSON: payload,
				RefreshedAt: now,
				ExpiresAt:   now.Add(c.ttl),
			})
		}
	}
	return entities, nil
}

// Invalidate drops the cached list for a user, forcing the next read to
// hit the backend. Used after workspace switches and membership changes.
func (c *EntityLists) Invalidate(ctx context.Context, userID string) {
	if c.store == nil {
		return
	}
	_ = c.store.DeleteEntityList(ctx, userID)
}
