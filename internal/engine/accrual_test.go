package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccruedIncrements(t *testing.T) {
	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want int
	}{
		{"never accrued", time.Time{}, at(2026, 2, 10, 6, 0), 0},
		{"same epoch", at(2026, 2, 10, 6, 0), at(2026, 2, 10, 23, 0), 0},
		{"one boundary", at(2026, 2, 10, 4, 0), at(2026, 2, 10, 5, 0), 2},
		{"three days", at(2026, 2, 7, 10, 0), at(2026, 2, 10, 6, 0), 6},
		{"early morning counts previous day", at(2026, 2, 7, 4, 0), at(2026, 2, 10, 4, 0), 6},
		{"clock moved backwards", at(2026, 2, 10, 6, 0), at(2026, 2, 8, 6, 0), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AccruedIncrements(tc.last, tc.now))
		})
	}
}

func TestAccruedIncrementsAcrossZones(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	// 2026-02-10 04:00 JST was stored as UTC; it belongs to the 02-09 epoch in JST.
	last := time.Date(2026, 2, 9, 19, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 10, 6, 0, 0, 0, jst)
	assert.Equal(t, 2, AccruedIncrements(last, now))
}
