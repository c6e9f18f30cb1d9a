package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"missiontracker/internal/storage"
)

func TestServiceFirstRunPersistsOnce(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clock := NewFakeClock(at(2026, 2, 10, 12, 0))

	svc := NewService(store, WithClock(clock))
	st, _, err := svc.Reconcile(ctx, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 1, store.Saves())
	assert.Equal(t, 0, st.BossKeys)
	require.NotNil(t, st.LastBiWeeklyResetTime)

	again := NewService(store, WithClock(clock))
	_, res, err := again.Reconcile(ctx, testCatalog())
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Equal(t, 1, store.Saves())
}

func TestServiceCorruptBlobFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Put(DefaultStateKey, []byte("{{{"))
	core, logs := observer.New(zapcore.WarnLevel)

	svc := NewService(store, WithClock(NewFakeClock(at(2026, 2, 10, 12, 0))), WithLogger(zap.New(core)))
	st, _, err := svc.Reconcile(ctx, testCatalog())
	require.NoError(t, err)
	assert.Empty(t, st.Completed)
	assert.Equal(t, 1, store.Saves())
	assert.Equal(t, 1, logs.FilterMessage("discarding unreadable state").Len())

	blob, err := store.Load(ctx, DefaultStateKey)
	require.NoError(t, err)
	_, err = DecodeState(blob)
	assert.NoError(t, err)
}

func TestServiceMutationsPersist(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clock := NewFakeClock(at(2026, 2, 10, 12, 0))
	svc := NewService(store, WithClock(clock))
	_, _, err := svc.Reconcile(ctx, testCatalog())
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, "d-login")
	require.NoError(t, err)
	_, err = svc.SetStock(ctx, ResourceElite, 2)
	require.NoError(t, err)
	_, err = svc.SetRuinsFloor(ctx, 41)
	require.NoError(t, err)

	reader := NewService(store, WithClock(clock))
	st, existed, err := reader.Load(ctx)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.True(t, st.IsCompleted("d-login"))
	assert.Equal(t, 2, st.EliteKeys)
	assert.Equal(t, 41, st.RuinsFloor)

	_, err = svc.SetStock(ctx, Resource("gold"), 1)
	assert.Error(t, err)
}

func TestServiceUndo(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store, WithClock(NewFakeClock(at(2026, 2, 10, 12, 0))))

	_, key, err := svc.Undo(ctx)
	require.NoError(t, err)
	assert.Empty(t, key)
	assert.Equal(t, 0, store.Saves())

	_, err = svc.Toggle(ctx, "w-guild")
	require.NoError(t, err)
	st, key, err := svc.Undo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "w-guild", key)
	assert.False(t, st.IsCompleted("w-guild"))
	assert.Equal(t, 2, store.Saves())
}

func TestServiceResetAll(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store, WithClock(NewFakeClock(at(2026, 2, 10, 12, 0))))

	_, err := svc.Toggle(ctx, "d-login")
	require.NoError(t, err)
	_, err = svc.SetStock(ctx, ResourceBoss, 0)
	require.NoError(t, err)

	st, err := svc.ResetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.Completed)
	assert.Empty(t, st.UndoStack)
	assert.Equal(t, MaxKeys, st.BossKeys)
}

func TestServiceReconcileAfterDayBoundary(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clock := NewFakeClock(at(2026, 2, 10, 12, 0))
	svc := NewService(store, WithClock(clock))
	_, _, err := svc.Reconcile(ctx, testCatalog())
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "d-login")
	require.NoError(t, err)
	_, err = svc.SetStock(ctx, ResourceBoss, 1)
	require.NoError(t, err)

	clock.Set(at(2026, 2, 11, 5, 0))
	st, res, err := svc.Reconcile(ctx, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, []string{"d-login"}, res.Cleared)
	assert.Equal(t, 2, res.Increments)
	assert.Equal(t, 3, st.BossKeys)
}

func TestServiceWarnsOnConcurrentWriter(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := storage.NewStateRepo(db)

	clock := NewFakeClock(at(2026, 2, 10, 12, 0))
	core, logs := observer.New(zapcore.WarnLevel)

	first := NewService(repo, WithClock(clock))
	second := NewService(repo, WithClock(clock), WithLogger(zap.New(core)))
	_, _, err = first.Load(ctx)
	require.NoError(t, err)
	_, _, err = second.Load(ctx)
	require.NoError(t, err)

	_, err = first.Toggle(ctx, "d-login")
	require.NoError(t, err)
	_, err = second.Toggle(ctx, "w-guild")
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("state was modified by another writer; overwriting").Len())

	// Last write wins.
	st, _, err := NewService(repo, WithClock(clock)).Load(ctx)
	require.NoError(t, err)
	assert.True(t, st.IsCompleted("w-guild"))
	assert.False(t, st.IsCompleted("d-login"))
}
