package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StateRepo stores versioned state blobs in sqlite.
type StateRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db, now: time.Now}
}

func (r *StateRepo) Get(ctx context.Context, key string) (*StateBlob, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, value, revision, updated_at
		FROM state_blobs
		WHERE key = ?
	`, key)

	var (
		b     StateBlob
		value string
	)
	if err := row.Scan(&b.Key, &value, &b.Revision, &b.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state get: %w", err)
	}
	b.Value = []byte(value)
	return &b, nil
}

// Load returns the blob for key, or nil when it was never saved.
func (r *StateRepo) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := r.Get(ctx, key)
	if err != nil || b == nil {
		return nil, err
	}
	return b.Value, nil
}

// Save upserts the blob and stamps a fresh revision.
func (r *StateRepo) Save(ctx context.Context, key string, blob []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO state_blobs (key, value, revision, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			revision = excluded.revision,
			updated_at = excluded.updated_at
	`, key, string(blob), uuid.NewString(), r.now().UTC())
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}

// Revision returns the current revision of key, or "" when it was never saved.
func (r *StateRepo) Revision(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT revision FROM state_blobs WHERE key = ?`, key)
	var rev string
	if err := row.Scan(&rev); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("state revision: %w", err)
	}
	return rev, nil
}

func (r *StateRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM state_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("state delete: %w", err)
	}
	return nil
}

func (r *StateRepo) ListKeys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM state_blobs ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("state list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("state scan: %w", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("state rows: %w", err)
	}
	return out, nil
}
