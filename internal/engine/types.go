package engine

import (
	"fmt"
	"strings"
	"time"
)

type MissionType string

const (
	MissionTypeDaily  MissionType = "daily"
	MissionTypeWeekly MissionType = "weekly"
	MissionTypeEvent  MissionType = "event"
)

func (t MissionType) IsValid() bool {
	switch t {
	case MissionTypeDaily, MissionTypeWeekly, MissionTypeEvent:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryDaily  Category = "daily"
	CategoryWeekly Category = "weekly"
	CategoryOther  Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryDaily, CategoryWeekly, CategoryOther:
		return true
	default:
		return false
	}
}

// Kind selects how a mission is tracked and which option block applies.
type Kind string

const (
	KindCheckbox Kind = "checkbox"
	KindStore    Kind = "store"
	KindRaid     Kind = "raid"
	KindRuins    Kind = "ruins"
	KindStock    Kind = "stock"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindCheckbox, KindStore, KindRaid, KindRuins, KindStock:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy  Difficulty = "easy"
	DifficultyHard  Difficulty = "hard"
	DifficultyNight Difficulty = "night"
)

// RaidDifficulties is the fixed tier set crossed with raid sub-items, in display order.
var RaidDifficulties = []Difficulty{DifficultyEasy, DifficultyHard, DifficultyNight}

// Resource is a regenerating key counter.
type Resource string

const (
	ResourceBoss  Resource = "boss"
	ResourceElite Resource = "elite"
)

func (r Resource) IsValid() bool {
	switch r {
	case ResourceBoss, ResourceElite:
		return true
	default:
		return false
	}
}

// Resources lists every regenerating counter.
var Resources = []Resource{ResourceBoss, ResourceElite}

type SubItem struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(input string) (ClockTime, error) {
	s := strings.TrimSpace(input)
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time: %q", input)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the instant at c on the calendar day of t, in t's location.
func (c ClockTime) On(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, t.Location())
}

// TimeWindow is a same-day [Start, End] eligibility window.
type TimeWindow struct {
	Start ClockTime
	End   ClockTime
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// Activation restricts when an event mission is eligible.
// The zero value means always eligible.
type Activation struct {
	Days   []time.Weekday
	Window *TimeWindow
}

func (a Activation) IsZero() bool {
	return len(a.Days) == 0 && a.Window == nil
}

type StockOptions struct {
	Resource Resource
}

type RaidOptions struct {
	// Locked disables every cell of the grid.
	Locked bool
	// LockedCells lists individual cells as "subId_difficulty".
	LockedCells []string
}

type Mission struct {
	ID          string
	Name        string
	Type        MissionType
	Category    Category
	Image       string
	Description string
	Kind        Kind
	SubItems    []SubItem

	// ResetInterval overrides the cadence derived from Type/Category when set.
	ResetInterval Cadence
	Activation    Activation

	Stock StockOptions
	Raid  RaidOptions
}

// EffectiveKind treats a missing kind as a plain checkbox.
func (m Mission) EffectiveKind() Kind {
	if m.Kind.IsValid() {
		return m.Kind
	}
	return KindCheckbox
}

// CellLocked reports whether a raid cell is disabled by catalog metadata.
func (m Mission) CellLocked(subID string, d Difficulty) bool {
	if m.Raid.Locked {
		return true
	}
	cell := subID + "_" + string(d)
	for _, c := range m.Raid.LockedCells {
		if c == cell {
			return true
		}
	}
	return false
}
