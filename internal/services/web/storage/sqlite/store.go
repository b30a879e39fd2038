// Package sqlite provides SQLite-backed persistence for web cache data.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sudobility/whisperly-web/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/sudobility/whisperly-web/internal/services/web/storage"
	"github.com/sudobility/whisperly-web/internal/services/web/storage/sqlite/migrations"
)

// Store provides SQLite-backed persistence for the web entity-list cache.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a web cache SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetEntityList loads a user's cached entity list.
func (s *Store) GetEntityList(ctx context.Context, userID string) (webstorage.EntityListEntry, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.EntityListEntry{}, false, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return webstorage.EntityListEntry{}, false, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT user_id, payload_json, refreshed_at, expires_at
		 FROM entity_list_cache
		 WHERE user_id = ?`,
		userID,
	)

	var entry webstorage.EntityListEntry
	var refreshedAt int64
	var expiresAt int64
	if err := row.Scan(&entry.UserID, &entry.PayloadJSON, &refreshedAt, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return webstorage.EntityListEntry{}, false, nil
		}
		return webstorage.EntityListEntry{}, false, fmt.Errorf("get entity list: %w", err)
	}
	entry.RefreshedAt = unixMillisToTime(refreshedAt)
	entry.ExpiresAt = unixMillisToTime(expiresAt)
	return entry, true, nil
}

// PutEntityList upserts a user's cached entity list.
func (s *Store) PutEntityList(ctx context.Context, entry webstorage.EntityListEntry) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry.UserID = strings.TrimSpace(entry.UserID)
	if entry.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if len(entry.PayloadJSON) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO entity_list_cache (user_id, payload_json, refreshed_at, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   payload_json = excluded.payload_json,
		   refreshed_at = excluded.refreshed_at,
		   expires_at = excluded.expires_at`,
		entry.UserID,
		entry.PayloadJSON,
		timeToUnixMillis(entry.RefreshedAt),
		timeToUnixMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put entity list: %w", err)
	}
	return nil
}

// DeleteEntityList removes a user's cached entity list.
func (s *Store) DeleteEntityList(ctx context.Context, userID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM entity_list_cache WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete entity list: %w", err)
	}
	return nil
}

func timeToUnixMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

func unixMillisToTime(millis int64) time.Time {
	if millis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis).UTC()
}
