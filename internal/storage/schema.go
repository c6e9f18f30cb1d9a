package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; the index+1 of the last applied step is
// recorded in PRAGMA user_version.
var migrations = [][]string{
	{
		// One JSON blob per versioned key; revision changes on every save.
		`CREATE TABLE IF NOT EXISTS state_blobs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			revision TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_state_blobs_updated_at ON state_blobs(updated_at);`,
	},
}

// SchemaVersion is the version Migrate brings a database to.
func SchemaVersion() int { return len(migrations) }

func Migrate(ctx context.Context, db *sql.DB) error {
	current, err := userVersion(ctx, db)
	if err != nil {
		return err
	}
	if current > len(migrations) {
		return fmt.Errorf("migrate: database schema v%d is newer than supported v%d", current, len(migrations))
	}

	for v := current; v < len(migrations); v++ {
		step := migrations[v]
		err := withTx(ctx, db, func(tx *sql.Tx) error {
			for _, stmt := range step {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			// PRAGMA does not accept bind parameters.
			_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", v+1))
			return err
		})
		if err != nil {
			return fmt.Errorf("migrate to v%d: %w", v+1, err)
		}
	}
	return nil
}

func userVersion(ctx context.Context, db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}
