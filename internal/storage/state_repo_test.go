package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *StateRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStateRepo(db)
}

func TestStateRepoLoadMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	blob, err := repo.Load(ctx, "missions_v5")
	require.NoError(t, err)
	assert.Nil(t, blob)

	rev, err := repo.Revision(ctx, "missions_v5")
	require.NoError(t, err)
	assert.Empty(t, rev)
}

func TestStateRepoSaveOverwritesAndBumpsRevision(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "missions_v5", []byte(`{"ruinsFloor":1}`)))
	rev1, err := repo.Revision(ctx, "missions_v5")
	require.NoError(t, err)
	require.NotEmpty(t, rev1)

	require.NoError(t, repo.Save(ctx, "missions_v5", []byte(`{"ruinsFloor":2}`)))
	rev2, err := repo.Revision(ctx, "missions_v5")
	require.NoError(t, err)
	assert.NotEqual(t, rev1, rev2)

	blob, err := repo.Load(ctx, "missions_v5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ruinsFloor":2}`, string(blob))
}

func TestStateRepoKeysAreIndependent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "missions_v4", []byte(`"old"`)))
	require.NoError(t, repo.Save(ctx, "missions_v5", []byte(`{}`)))

	keys, err := repo.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"missions_v4", "missions_v5"}, keys)

	require.NoError(t, repo.Delete(ctx, "missions_v4"))
	old, err := repo.Load(ctx, "missions_v4")
	require.NoError(t, err)
	assert.Nil(t, old)

	cur, err := repo.Load(ctx, "missions_v5")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(cur))
}

func TestMigrateIsRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db))

	v, err := userVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion(), v)
}

func TestMigrateRejectsNewerSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion()+1))
	require.NoError(t, err)
	assert.Error(t, Migrate(ctx, db))
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	in := []byte("abc")
	require.NoError(t, m.Save(ctx, "k", in))
	in[0] = 'x'

	out, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
	assert.Equal(t, 1, m.Saves())

	missing, err := m.Load(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
