package db

import (
	"database/sql"
	"fmt"
)

// migrations are run in order on every open. Each statement must be
// idempotent (CREATE ... IF NOT EXISTS) since there is no version table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS blobs (
		id         TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
