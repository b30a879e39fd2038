// Package sqlitemigrate applies embedded SQL migrations in filename order.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const ledgerTable = "schema_migrations"

// Apply runs every .sql file under root exactly once, recording applied
// files in a ledger table. Each migration runs in its own transaction.
func Apply(ctx context.Context, sqlDB *sql.DB, migrationFS fs.FS, root string) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+ledgerTable+` (
	    name TEXT PRIMARY KEY,
	    applied_at INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure migration ledger: %w", err)
	}

	for _, file := range files {
		applied, err := isApplied(ctx, sqlDB, file)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationFS, path.Join(root, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}

		tx, err := sqlDB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+ledgerTable+` (name, applied_at) VALUES (?, ?)`,
			file, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

func isApplied(ctx context.Context, sqlDB *sql.DB, name string) (bool, error) {
	var count int
	err := sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM `+ledgerTable+` WHERE name = ?`, name,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
