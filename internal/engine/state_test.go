package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleUndoRoundTrip(t *testing.T) {
	now := at(2026, 2, 10, 12, 0)
	st := DefaultState(now)
	st = st.Toggle("w-guild", now)
	before := st.Clone()

	toggled := st.Toggle("d-login", now.Add(time.Minute))
	require.True(t, toggled.IsCompleted("d-login"))
	assert.Equal(t, []string{"d-login", "w-guild"}, toggled.UndoStack)

	undone, key, ok := toggled.Undo()
	require.True(t, ok)
	assert.Equal(t, "d-login", key)
	assert.Equal(t, before.Completed, undone.Completed)
	assert.Equal(t, []string{"w-guild"}, undone.UndoStack)
}

func TestUndoDoesNotRestoreClearedCompletion(t *testing.T) {
	now := at(2026, 2, 10, 12, 0)
	st := DefaultState(now).Toggle("d-login", now)

	cleared := st.Toggle("d-login", now.Add(time.Minute))
	require.False(t, cleared.IsCompleted("d-login"))
	assert.Empty(t, cleared.UndoStack)

	after, _, ok := cleared.Undo()
	assert.False(t, ok)
	assert.False(t, after.IsCompleted("d-login"))
}

func TestToggleOffFiltersWholeStack(t *testing.T) {
	now := at(2026, 2, 10, 12, 0)
	st := DefaultState(now)
	for _, k := range []string{"a", "b", "c"} {
		st = st.Toggle(k, now)
	}
	require.Equal(t, []string{"c", "b", "a"}, st.UndoStack)

	st = st.Toggle("b", now)
	assert.Equal(t, []string{"c", "a"}, st.UndoStack)
	assert.False(t, st.IsCompleted("b"))
	assert.True(t, st.IsCompleted("a"))
}

func TestUndoStackIsBounded(t *testing.T) {
	now := at(2026, 2, 10, 12, 0)
	st := DefaultState(now)
	for i := 0; i < UndoLimit+5; i++ {
		st = st.Toggle(fmt.Sprintf("m-%02d", i), now)
	}

	require.Len(t, st.UndoStack, UndoLimit)
	assert.Equal(t, "m-24", st.UndoStack[0])
	assert.Equal(t, "m-05", st.UndoStack[UndoLimit-1])
	// Completions outside the history stay recorded.
	assert.True(t, st.IsCompleted("m-00"))
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	now := at(2026, 2, 10, 12, 0)
	st := DefaultState(now)
	_ = st.Toggle("d-login", now)
	assert.False(t, st.IsCompleted("d-login"))
	assert.Empty(t, st.UndoStack)
}

func TestSettersClamp(t *testing.T) {
	st := DefaultState(at(2026, 2, 10, 12, 0))

	assert.Equal(t, MaxKeys, st.SetStock(ResourceBoss, 99).BossKeys)
	assert.Equal(t, 0, st.SetStock(ResourceElite, -3).EliteKeys)
	assert.Equal(t, 4, st.SetStock(ResourceElite, 4).Stock(ResourceElite))

	assert.Equal(t, MaxRuinsFloor, st.SetRuinsFloor(75).RuinsFloor)
	assert.Equal(t, 0, st.SetRuinsFloor(-1).RuinsFloor)
	assert.Equal(t, 33, st.SetRuinsFloor(33).RuinsFloor)
}

func TestSettersKeepUndoHistory(t *testing.T) {
	now := at(2026, 2, 10, 12, 0)
	st := DefaultState(now).Toggle("d-login", now).SetStock(ResourceBoss, 3).SetRuinsFloor(12)

	undone, key, ok := st.Undo()
	require.True(t, ok)
	assert.Equal(t, "d-login", key)
	assert.Equal(t, 3, undone.BossKeys)
	assert.Equal(t, 12, undone.RuinsFloor)
}

func TestResetAllState(t *testing.T) {
	now := at(2026, 2, 10, 12, 0)
	st := ResetAllState(now)

	assert.Equal(t, MaxKeys, st.BossKeys)
	assert.Equal(t, MaxKeys, st.EliteKeys)
	assert.Empty(t, st.Completed)
	assert.Empty(t, st.UndoStack)
	assert.Equal(t, 0, st.RuinsFloor)
	assert.Equal(t, now, st.LastResetTime)
}

func TestDecodeStateNormalizes(t *testing.T) {
	blob := []byte(`{
		"completed": {"d-login": "2026-02-10T12:00:00+09:00", "w-guild": null},
		"ruinsFloor": 90,
		"bossKeys": 8,
		"eliteKeys": -1,
		"lastResetTime": "2026-02-10T05:00:00+09:00"
	}`)

	st, err := DecodeState(blob)
	require.NoError(t, err)
	assert.True(t, st.IsCompleted("d-login"))
	assert.NotContains(t, st.Completed, "w-guild")
	assert.Equal(t, MaxRuinsFloor, st.RuinsFloor)
	assert.Equal(t, MaxKeys, st.BossKeys)
	assert.Equal(t, 0, st.EliteKeys)
	assert.NotNil(t, st.UndoStack)
	assert.Nil(t, st.LastBiWeeklyResetTime)
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	_, err := DecodeState([]byte("{not json"))
	assert.Error(t, err)
}

func TestEncodeDecodePreservesInstants(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 123, time.FixedZone("JST", 9*60*60))
	st := DefaultState(now).Toggle("d-login", now)

	blob, err := EncodeState(st)
	require.NoError(t, err)
	got, err := DecodeState(blob)
	require.NoError(t, err)

	require.NotNil(t, got.Completed["d-login"])
	assert.True(t, got.Completed["d-login"].Equal(now))
	assert.True(t, got.LastResetTime.Equal(now))
}
