package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missiontracker/internal/engine"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, engine.DefaultStateKey, cfg.StateKey)
	assert.Equal(t, engine.DefaultBiWeeklyAnchorDate, cfg.BiWeeklyAnchor)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.SheetURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MT_DB_PATH", "/tmp/mt.db")
	t.Setenv("MT_TZ", "Asia/Tokyo")
	t.Setenv("MT_FETCH_TIMEOUT", "3s")
	t.Setenv("MT_SHEET_URL", "https://example.com/sheet/edit")
	t.Setenv("MT_OFFLINE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mt.db", cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Empty(t, cfg.SheetSource())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("MT_FETCH_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestSchedule(t *testing.T) {
	cfg := Config{BiWeeklyAnchor: "2026-02-23"}
	sch, err := cfg.Schedule(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 23, engine.ResetHour, 0, 0, 0, time.UTC), sch.Anchor)

	_, err = Config{BiWeeklyAnchor: "2026-02-24"}.Schedule(time.UTC)
	var invalid engine.InvalidAnchorError
	assert.ErrorAs(t, err, &invalid)

	_, err = Config{TimeZone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
