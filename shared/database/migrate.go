package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"
)

//go:embed migrations
var migrationsFS embed.FS

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	)
`

// Migrate applies the embedded migrations for the active driver in
// lexical order, skipping versions already recorded in schema_migrations.
func (c *Client) Migrate(ctx context.Context) error {
	dir := path.Join("migrations", c.Driver())

	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("no migrations for driver %q: %w", c.Driver(), err)
	}

	var versions []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			versions = append(versions, e.Name())
		}
	}
	sort.Strings(versions)

	if _, err := c.db.ExecContext(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, version := range versions {
		applied, err := c.migrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		body, err := fs.ReadFile(migrationsFS, path.Join(dir, version))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", version, err)
		}

		if err := c.applyMigration(ctx, version, string(body)); err != nil {
			return err
		}

		c.logger.Info("Applied migration",
			slog.String("version", version),
			slog.String("driver", c.Driver()),
		)
	}

	return nil
}

func (c *Client) migrationApplied(ctx context.Context, version string) (bool, error) {
	var count int
	query := c.db.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`)
	if err := c.db.GetContext(ctx, &count, query, version); err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func (c *Client) applyMigration(ctx context.Context, version, body string) error {
	tx, err := c.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, body); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", version, err)
	}

	insert := tx.Rebind(`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`)
	if _, err := tx.ExecContext(ctx, insert, version, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", version, err)
	}
	return nil
}
