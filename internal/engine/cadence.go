package engine

import (
	"fmt"
	"strings"
)

// Cadence is the reset periodicity governing a mission.
type Cadence string

const (
	CadenceNone     Cadence = "none"
	CadenceDaily    Cadence = "daily"
	CadenceWeekly   Cadence = "weekly"
	CadenceBiWeekly Cadence = "bi-weekly"
)

func (c Cadence) IsValid() bool {
	switch c {
	case CadenceNone, CadenceDaily, CadenceWeekly, CadenceBiWeekly:
		return true
	default:
		return false
	}
}

func ParseCadence(input string) (Cadence, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "biweekly", "bi_weekly", "fortnightly":
		s = string(CadenceBiWeekly)
	}
	c := Cadence(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid cadence: %q", input)
	}
	return c, nil
}

// EffectiveCadence resolves the cadence of m: the explicit override, then the
// mission type, then the category. Malformed values never fail; they fall
// through to the next source.
func EffectiveCadence(m Mission) Cadence {
	if m.ResetInterval.IsValid() {
		return m.ResetInterval
	}
	switch m.Type {
	case MissionTypeDaily:
		return CadenceDaily
	case MissionTypeWeekly:
		return CadenceWeekly
	}
	switch m.Category {
	case CategoryDaily:
		return CadenceDaily
	case CategoryWeekly:
		return CadenceWeekly
	default:
		return CadenceNone
	}
}
