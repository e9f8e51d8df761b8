// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-queue/auth"
	"github.com/danielhkuo/quickly-queue/cliparse"
)

// Open connects to the configured database engine. Queries elsewhere use
// $N placeholders, which both lib/pq and modernc sqlite accept, so the
// engine choice stays contained in this function.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		conn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// defaultContentOptions are inserted at startup if absent.
var defaultContentOptions = []string{"Abyss", "Theatre", "Review"}

// SeedContentOptions inserts the default content options, skipping any
// name that already exists. Safe to call on every startup.
func SeedContentOptions(db *sql.DB) error {
	for _, name := range defaultContentOptions {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM content_option WHERE name = $1)", name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check content option: %w", err)
		}
		if exists {
			continue
		}

		id, err := auth.GenerateID(12)
		if err != nil {
			return err
		}
		if _, err := db.Exec("INSERT INTO content_option (id, name) VALUES ($1, $2)", id, name); err != nil {
			return fmt.Errorf("failed to seed content option: %w", err)
		}
	}
	return nil
}
