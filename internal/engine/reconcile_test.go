package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileClearsDailyAtBoundary(t *testing.T) {
	catalog := testCatalog()
	done := at(2026, 2, 10, 12, 0)
	st := DefaultState(done).Toggle("d-login", done)

	kept, res := Schedule{}.Reconcile(catalog, st, at(2026, 2, 11, 4, 59))
	assert.True(t, kept.IsCompleted("d-login"))
	assert.Empty(t, res.Cleared)

	cleared, res := Schedule{}.Reconcile(catalog, st, at(2026, 2, 11, 5, 0))
	assert.False(t, cleared.IsCompleted("d-login"))
	assert.Equal(t, []string{"d-login"}, res.Cleared)

	again, res := Schedule{}.Reconcile(catalog, cleared, at(2026, 2, 11, 9, 0))
	assert.False(t, again.IsCompleted("d-login"))
	assert.Empty(t, res.Cleared)
}

func TestReconcileIsIdempotent(t *testing.T) {
	catalog := testCatalog()
	start := at(2026, 2, 6, 12, 0)
	st := DefaultState(start).Toggle("d-login", start).Toggle("w-world-raid:day1", start).SetStock(ResourceBoss, 1)

	now := at(2026, 2, 10, 12, 0)
	first, res1 := Schedule{}.Reconcile(catalog, st, now)
	require.True(t, res1.Changed())

	second, res2 := Schedule{}.Reconcile(catalog, first, now)
	assert.False(t, res2.Changed())
	assert.Equal(t, first, second)
}

func TestReconcileAccruesKeys(t *testing.T) {
	now := at(2026, 2, 10, 6, 0)
	st := DefaultState(at(2026, 2, 7, 10, 0)).SetStock(ResourceBoss, 1).SetStock(ResourceElite, 0)
	st.LastBiWeeklyResetTime = tp(at(2026, 2, 9, 6, 0))

	out, res := Schedule{}.Reconcile(nil, st, now)
	assert.Equal(t, 6, res.Increments)
	assert.Equal(t, MaxKeys, out.BossKeys)
	assert.Equal(t, 6, out.EliteKeys)
	assert.Equal(t, now, out.LastResetTime)
}

func TestReconcileKeepsAccrualStampWithinEpoch(t *testing.T) {
	stamp := at(2026, 2, 10, 6, 0)
	st := DefaultState(stamp).SetStock(ResourceBoss, 2)
	st.LastBiWeeklyResetTime = tp(stamp)

	out, res := Schedule{}.Reconcile(nil, st, at(2026, 2, 11, 4, 59))
	assert.False(t, res.Changed())
	assert.Equal(t, stamp, out.LastResetTime)
	assert.Equal(t, 2, out.BossKeys)
}

func TestReconcileStampsMissingAccrualTime(t *testing.T) {
	st := DefaultState(time.Time{})
	st.LastBiWeeklyResetTime = tp(at(2026, 2, 9, 6, 0))
	now := at(2026, 2, 10, 6, 0)

	out, res := Schedule{}.Reconcile(nil, st, now)
	assert.True(t, res.AccrualStamped)
	assert.Zero(t, res.Increments)
	assert.Equal(t, now, out.LastResetTime)
}

func TestReconcileBiWeeklyMarker(t *testing.T) {
	st := DefaultState(at(2026, 2, 10, 6, 0))

	out, res := Schedule{}.Reconcile(nil, st, at(2026, 2, 10, 6, 0))
	require.True(t, res.BiWeeklyStamp)
	require.NotNil(t, out.LastBiWeeklyResetTime)

	out.LastResetTime = at(2026, 2, 20, 6, 0)
	mid, res := Schedule{}.Reconcile(nil, out, at(2026, 2, 20, 7, 0))
	assert.False(t, res.BiWeeklyStamp)
	assert.Equal(t, at(2026, 2, 10, 6, 0), *mid.LastBiWeeklyResetTime)

	crossed, res := Schedule{}.Reconcile(nil, mid, at(2026, 2, 24, 7, 0))
	assert.True(t, res.BiWeeklyStamp)
	assert.Equal(t, at(2026, 2, 24, 7, 0), *crossed.LastBiWeeklyResetTime)
}

func TestReconcileTieredRaidSkipsLockedCells(t *testing.T) {
	catalog := testCatalog()
	raid, _ := FindMission(catalog, "w-raid")
	done := at(2026, 2, 10, 12, 0)

	st := DefaultState(done)
	for _, k := range CompletionKeys(raid) {
		st = st.Toggle(k, done)
	}
	st.Completed["w-raid:light_night"] = tp(done)

	out, res := Schedule{}.Reconcile(catalog, st, at(2026, 2, 16, 5, 0))
	assert.Len(t, res.Cleared, 8)
	assert.NotContains(t, res.Cleared, "w-raid:light_night")
	for _, k := range CompletionKeys(raid) {
		assert.False(t, out.IsCompleted(k), k)
	}
}

func TestReconcileEventFallsBackToCategory(t *testing.T) {
	catalog := testCatalog()
	done := time.Date(2026, 2, 13, 19, 40, 0, 0, time.UTC)
	st := DefaultState(done).Toggle("e-guild-dance", done)

	out, res := Schedule{}.Reconcile(catalog, st, time.Date(2026, 2, 14, 6, 0, 0, 0, time.UTC))
	assert.Contains(t, res.Cleared, "e-guild-dance")
	assert.False(t, out.IsCompleted("e-guild-dance"))
}

func TestReconcileIgnoresUnknownKeys(t *testing.T) {
	done := at(2026, 2, 1, 12, 0)
	st := DefaultState(done).Toggle("retired-mission", done)

	out, _ := Schedule{}.Reconcile(testCatalog(), st, at(2026, 2, 10, 12, 0))
	assert.True(t, out.IsCompleted("retired-mission"))
}
