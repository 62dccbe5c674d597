package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/resource-matcher/repository/tx"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var files embed.FS

// Run applies every embedded migration not yet recorded in schema_migrations.
func Run(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
	filename VARCHAR(255) NOT NULL PRIMARY KEY,
	applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, "SELECT filename FROM schema_migrations"); err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, name := range applied {
		done[name] = true
	}

	names, err := Files()
	if err != nil {
		return fmt.Errorf("list migration files: %w", err)
	}

	for _, name := range names {
		if done[name] {
			continue
		}
		if err := apply(ctx, db, name); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		logger.Info("migration applied", zap.String("file", name))
	}
	return nil
}

// Files lists the embedded migrations in apply order.
func Files() ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func apply(ctx context.Context, db *sqlx.DB, name string) error {
	content, err := fs.ReadFile(files, "sql/"+name)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	// MySQL commits implicitly after DDL, so only the bookkeeping row rolls
	// back on failure. Migrations must stay idempotent (IF NOT EXISTS) so a
	// rerun after a partial apply converges.
	return tx.Run(ctx, db, func(t *sqlx.Tx) error {
		if _, err := t.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("execute sql: %w", err)
		}
		if _, err := t.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", name); err != nil {
			return fmt.Errorf("record migration: %w", err)
		}
		return nil
	})
}
