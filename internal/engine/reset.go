package engine

import "time"

// ResetHour is the wall-clock hour at which every cadence rolls over.
const ResetHour = 5

// DefaultBiWeeklyAnchorDate is a Monday known to be a bi-weekly reset in the
// live game. Override it through configuration when the calendar shifts.
const DefaultBiWeeklyAnchorDate = "2026-02-09"

var resetClock = ClockTime{Hour: ResetHour}

// DefaultBiWeeklyAnchor returns the default anchor at 05:00 in loc.
func DefaultBiWeeklyAnchor(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	d, _ := time.ParseInLocation("2006-01-02", DefaultBiWeeklyAnchorDate, loc)
	return resetClock.On(d)
}

// ParseBiWeeklyAnchor parses a YYYY-MM-DD date (or an RFC 3339 instant) as an
// anchor in loc. The date must fall on a Monday.
func ParseBiWeeklyAnchor(input string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02", input, loc)
	if err != nil {
		t, err = time.Parse(time.RFC3339, input)
		if err != nil {
			return time.Time{}, InvalidAnchorError{Input: input}
		}
		t = t.In(loc)
	}
	if wd := t.Weekday(); wd != time.Monday {
		return time.Time{}, InvalidAnchorError{Input: input, Weekday: &wd}
	}
	return resetClock.On(t), nil
}

// NextDailyReset returns the first 05:00 at or after now.
func NextDailyReset(now time.Time) time.Time {
	reset := resetClock.On(now)
	if now.After(reset) {
		reset = reset.AddDate(0, 0, 1)
	}
	return reset
}

// LastDailyReset returns the most recent 05:00 at or before now.
func LastDailyReset(now time.Time) time.Time {
	reset := resetClock.On(now)
	if now.Before(reset) {
		reset = reset.AddDate(0, 0, -1)
	}
	return reset
}

// weekReset is 05:00 on the Monday of now's ISO week.
func weekReset(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	return resetClock.On(now.AddDate(0, 0, -offset))
}

func NextWeeklyReset(now time.Time) time.Time {
	reset := weekReset(now)
	if now.After(reset) {
		reset = reset.AddDate(0, 0, 7)
	}
	return reset
}

func LastWeeklyReset(now time.Time) time.Time {
	reset := weekReset(now)
	if now.Before(reset) {
		reset = reset.AddDate(0, 0, -7)
	}
	return reset
}

// LastBiWeeklyReset returns the most recent every-other-Monday 05:00 boundary,
// counting whole weeks from anchor. A zero anchor uses DefaultBiWeeklyAnchor.
func LastBiWeeklyReset(now time.Time, anchor time.Time) time.Time {
	if anchor.IsZero() {
		anchor = DefaultBiWeeklyAnchor(now.Location())
	}
	reset := weekReset(now)
	weeks := floorDiv(calendarDays(reset, anchor.In(now.Location())), 7)
	if weeks%2 == 0 {
		if now.Before(reset) {
			return reset.AddDate(0, 0, -14)
		}
		return reset
	}
	return reset.AddDate(0, 0, -7)
}

// NextBiWeeklyReset returns the first bi-weekly boundary at or after now.
func NextBiWeeklyReset(now time.Time, anchor time.Time) time.Time {
	last := LastBiWeeklyReset(now, anchor)
	if last.Equal(now) {
		return last
	}
	return last.AddDate(0, 0, 14)
}

// Schedule resolves reset boundaries per cadence.
type Schedule struct {
	// Anchor is a known bi-weekly reset Monday; zero means the default.
	Anchor time.Time
}

// LastReset returns the boundary at which completions of cadence c last
// expired. ok is false for CadenceNone and unknown cadences.
func (s Schedule) LastReset(c Cadence, now time.Time) (t time.Time, ok bool) {
	switch c {
	case CadenceDaily:
		return LastDailyReset(now), true
	case CadenceWeekly:
		return LastWeeklyReset(now), true
	case CadenceBiWeekly:
		return LastBiWeeklyReset(now, s.Anchor), true
	default:
		return time.Time{}, false
	}
}

func (s Schedule) NextReset(c Cadence, now time.Time) (t time.Time, ok bool) {
	switch c {
	case CadenceDaily:
		return NextDailyReset(now), true
	case CadenceWeekly:
		return NextWeeklyReset(now), true
	case CadenceBiWeekly:
		return NextBiWeeklyReset(now, s.Anchor), true
	default:
		return time.Time{}, false
	}
}

// ShouldReset reports whether a completion recorded at last belongs to a
// reset epoch of cadence c that has closed by now.
func (s Schedule) ShouldReset(last *time.Time, c Cadence, now time.Time) bool {
	if last == nil || last.IsZero() {
		return false
	}
	boundary, ok := s.LastReset(c, now)
	if !ok {
		return false
	}
	return last.Before(boundary)
}

// ShouldReset applies Schedule.ShouldReset with the default anchor.
func ShouldReset(last *time.Time, c Cadence, now time.Time) bool {
	return Schedule{}.ShouldReset(last, c, now)
}

// calendarDays counts calendar days from b to a using each instant's own
// wall-clock date.
func calendarDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db) / (24 * time.Hour))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
