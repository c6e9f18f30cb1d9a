package engine

import (
	"fmt"
	"strings"
	"time"
)

// ParseResource parses user input to a Resource.
// Supported: boss, elite (and their key/stock spellings).
func ParseResource(input string) (Resource, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "boss", "boss-keys", "bosskeys":
		return ResourceBoss, nil
	case "elite", "elite-keys", "elitekeys":
		return ResourceElite, nil
	default:
		return "", fmt.Errorf("invalid resource: %q (want boss|elite)", input)
	}
}

// ParseKind maps a catalog renderType to a Kind. Empty input is a checkbox.
func ParseKind(input string) (Kind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return KindCheckbox, nil
	}
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid render type: %q", input)
	}
	return k, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts full English weekday names or their three-letter
// abbreviations, case-insensitively.
func ParseWeekday(input string) (time.Weekday, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if d, ok := weekdays[s]; ok {
		return d, nil
	}
	if len(s) == 3 {
		for name, d := range weekdays {
			if strings.HasPrefix(name, s) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", input)
}

// ParseTimeWindow parses "HH:MM-HH:MM".
func ParseTimeWindow(input string) (TimeWindow, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(input), "-")
	if !ok {
		return TimeWindow{}, fmt.Errorf("invalid time window: %q", input)
	}
	s, err := ParseClockTime(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return TimeWindow{}, err
	}
	return TimeWindow{Start: s, End: e}, nil
}
