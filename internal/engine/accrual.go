package engine

import "time"

const (
	// KeysPerDay is the stock granted for every daily reset crossed.
	KeysPerDay = 2
	// MaxKeys bounds every regenerating counter.
	MaxKeys = 6
	// MaxRuinsFloor bounds the ruins progress value.
	MaxRuinsFloor = 60
)

// AccruedIncrements counts the 05:00 boundaries crossed between last and now,
// times KeysPerDay. A zero last yields 0; the result is never negative.
func AccruedIncrements(last time.Time, now time.Time) int {
	if last.IsZero() {
		return 0
	}
	from := LastDailyReset(last.In(now.Location()))
	to := LastDailyReset(now)
	days := calendarDays(to, from)
	if days <= 0 {
		return 0
	}
	return days * KeysPerDay
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
