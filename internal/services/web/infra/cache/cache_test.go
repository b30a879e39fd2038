package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	webstorage "github.com/sudobility/whisperly-web/internal/services/web/storage"
)

type fakeSource struct {
	entities []apiclient.Entity
	err      error
	calls    int
}

func (f *fakeSource) Entities(ctx context.Context, userID string) ([]apiclient.Entity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entities, nil
}

type memoryStore struct {
	entries map[string]webstorage.EntityListEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]webstorage.EntityListEntry{}}
}

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) GetEntityList(_ context.Context, userID string) (webstorage.EntityListEntry, bool, error) {
	entry, ok := m.entries[userID]
	return entry, ok, nil
}

func (m *memoryStore) PutEntityList(_ context.Context, entry webstorage.EntityListEntry) error {
	m.entries[entry.UserID] = entry
	return nil
}

func (m *memoryStore) DeleteEntityList(_ context.Context, userID string) error {
	delete(m.entries, userID)
	return nil
}

func TestEntitiesServesFreshCacheWithoutSourceCall(t *testing.T) {
	t.Parallel()
	source := &fakeSource{entities: []apiclient.Entity{{Slug: "acme"}}}
	store := newMemoryStore()
	lists := NewEntityLists(source, store, time.Minute)

	if _, err := lists.Entities(context.Background(), "user-1"); err != nil {
		t.Fatalf("first Entities() = %v", err)
	}
	entities, err := lists.Entities(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("second Entities() = %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("source calls = %d, want 1", source.calls)
	}
	if len(entities) != 1 || entities[0].Slug != "acme" {
		t.Fatalf("entities = %+v", entities)
	}
}

func TestEntitiesRefreshesExpiredCache(t *testing.T) {
	t.Parallel()
	source := &fakeSource{entities: []apiclient.Entity{{Slug: "acme"}}}
	store := newMemoryStore()
	lists := NewEntityLists(source, store, time.Minute)
	current := time.Now()
	lists.now = func() time.Time { return current }

	if _, err := lists.Entities(context.Background(), "user-1"); err != nil {
		t.Fatalf("first Entities() = %v", err)
	}
	current = current.Add(2 * time.Minute)
	if _, err := lists.Entities(context.Background(), "user-1"); err != nil {
		t.Fatalf("second Entities() = %v", err)
	}
	if source.calls != 2 {
		t.Fatalf("source calls = %d, want 2 after expiry", source.calls)
	}
}

func TestEntitiesPropagatesSourceError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("backend down")
	lists := NewEntityLists(&fakeSource{err: wantErr}, newMemoryStore(), time.Minute)

	if _, err := lists.Entities(context.Background(), "user-1"); !errors.Is(err, wantErr) {
		t.Fatalf("Entities() = %v, want %v", err, wantErr)
	}
}

func TestEntitiesWorksWithoutStore(t *testing.T) {
	t.Parallel()
	source := &fakeSource{entities: []apiclient.Entity{{Slug: "acme"}}}
	lists := NewEntityLists(source, nil, 0)

	if _, err := lists.Entities(context.Background(), "user-1"); err != nil {
		t.Fatalf("Entities() = %v", err)
	}
	if _, err := lists.Entities(context.Background(), "user-1"); err != nil {
		t.Fatalf("Entities() = %v", err)
	}
	if source.calls != 2 {
		t.Fatalf("source calls = %d, want 2 without cache", source.calls)
	}
}

func TestInvalidateForcesRefresh(t *testing.T) {
	t.Parallel()
	source := &fakeSource{entities: []apiclient.Entity{{Slug: "acme"}}}
	store := newMemoryStore()
	lists := NewEntityLists(source, store, time.Minute)

	if _, err := lists.Entities(context.Background(), "user-1"); err != nil {
		t.Fatalf("Entities() = %v", err)
	}
	lists.Invalidate(context.Background(), "user-1")
	if _, err := lists.Entities(context.Background(), "user-1"); err != nil {
		t.Fatalf("Entities() = %v", err)
	}
	if source.calls != 2 {
		t.Fatalf("source calls = %d, want 2 after invalidation", source.calls)
	}
}
