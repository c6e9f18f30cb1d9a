package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPathEnv overrides the default database location.
const DBPathEnv = "MT_DB_PATH"

// DefaultDBPath returns the default tracker DB location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".missiontracker.db"), nil
}

// ResolveDBPath prefers an explicit path, then $MT_DB_PATH, then DefaultDBPath.
func ResolveDBPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(DBPathEnv); p != "" {
		return p, nil
	}
	return DefaultDBPath()
}

// OpenSQLite opens (and creates if missing) the SQLite database at the provided path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Open opens the database and applies migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	// One writer per process keeps sqlite from returning SQLITE_BUSY on upserts.
	db.SetMaxOpenConns(1)
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
