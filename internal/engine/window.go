package engine

import "time"

// IsActive reports whether m is eligible at now. Weekday and time-of-day
// restrictions must both pass when present. Windows are compared within
// now's calendar day and do not span midnight.
func IsActive(m Mission, now time.Time) bool {
	a := m.Activation
	if a.IsZero() {
		return true
	}
	if len(a.Days) > 0 && !containsWeekday(a.Days, now.Weekday()) {
		return false
	}
	if a.Window != nil {
		start := a.Window.Start.On(now)
		end := a.Window.End.On(now)
		if now.Before(start) || now.After(end) {
			return false
		}
	}
	return true
}

// VisibleMissions filters the catalog to missions eligible at now,
// preserving order.
func VisibleMissions(missions []Mission, now time.Time) []Mission {
	out := make([]Mission, 0, len(missions))
	for _, m := range missions {
		if IsActive(m, now) {
			out = append(out, m)
		}
	}
	return out
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}
