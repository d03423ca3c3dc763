package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const createMigrationsTableSQL = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		migration_name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

const insertMigrationSQL = `
	INSERT INTO schema_migrations (migration_name) VALUES ($1)`

// RunMigrations applies the embedded schema migrations that are not yet
// recorded in schema_migrations. Files run in lexical order; each one
// executes and is recorded inside a single transaction, so a failed
// migration is neither half-applied nor marked as done.
func (db *DB) RunMigrations(ctx context.Context) error {
	if err := db.Exec(ctx, createMigrationsTableSQL); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := migrationNames()
	if err != nil {
		return err
	}

	applied, err := db.appliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		if applied[path.Base(name)] {
			continue
		}
		if err := db.applyMigration(ctx, name); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		db.logger.Info("migration_applied", fmt.Sprintf("Applied migration %s", path.Base(name)), "startup", nil)
	}

	return nil
}

// migrationNames lists the embedded migration files in apply order.
func migrationNames() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (db *DB) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := db.Query(ctx, "SELECT migration_name FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func (db *DB) applyMigration(ctx context.Context, name string) error {
	statements, err := migrationFS.ReadFile(name)
	if err != nil {
		return err
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, string(statements)); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, insertMigrationSQL, path.Base(name)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
