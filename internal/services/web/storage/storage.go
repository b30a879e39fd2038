// Package storage declares persistence interfaces for web-owned cache data.
//
// The web service cache is a derived read optimization over backend entity
// lists and never becomes the source of truth for workspace membership.
package storage

import (
	"context"
	"time"
)

// EntityListEntry stores one user's cached workspace list and freshness
// metadata. The payload is the backend's JSON entity list verbatim.
type EntityListEntry struct {
	UserID      string
	PayloadJSON []byte
	RefreshedAt time.Time
	ExpiresAt   time.Time
}

// Store is the contract for web cache persistence.
type Store interface {
	Close() error
	GetEntityList(ctx context.Context, userID string) (EntityListEntry, bool, error)
	PutEntityList(ctx context.Context, entry EntityListEntry) error
	DeleteEntityList(ctx context.Context, userID string) error
}
