package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"missiontracker/internal/engine"
)

// Config is read from MT_* environment variables. CLI flags override
// individual fields after parsing.
type Config struct {
	DBPath         string        `env:"MT_DB_PATH"`
	StateKey       string        `env:"MT_STATE_KEY" envDefault:"missions_v5"`
	BiWeeklyAnchor string        `env:"MT_BIWEEKLY_ANCHOR" envDefault:"2026-02-09"`
	TimeZone       string        `env:"MT_TZ"`
	SheetURL       string        `env:"MT_SHEET_URL"`
	CatalogFile    string        `env:"MT_CATALOG_FILE"`
	FetchTimeout   time.Duration `env:"MT_FETCH_TIMEOUT" envDefault:"10s"`
	LogLevel       string        `env:"MT_LOG_LEVEL" envDefault:"warn"`
	LogFile        string        `env:"MT_LOG_FILE"`
	Offline        bool          `env:"MT_OFFLINE"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Location resolves TimeZone. Empty means the host's local zone.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("MT_TZ: %w", err)
	}
	return loc, nil
}

// Schedule builds the reset schedule from BiWeeklyAnchor, interpreted in loc.
func (c Config) Schedule(loc *time.Location) (engine.Schedule, error) {
	if c.BiWeeklyAnchor == "" {
		return engine.Schedule{Anchor: engine.DefaultBiWeeklyAnchor(loc)}, nil
	}
	anchor, err := engine.ParseBiWeeklyAnchor(c.BiWeeklyAnchor, loc)
	if err != nil {
		return engine.Schedule{}, fmt.Errorf("MT_BIWEEKLY_ANCHOR: %w", err)
	}
	return engine.Schedule{Anchor: anchor}, nil
}

// SheetSource returns the sheet URL to fetch, or "" when offline.
func (c Config) SheetSource() string {
	if c.Offline {
		return ""
	}
	return c.SheetURL
}
