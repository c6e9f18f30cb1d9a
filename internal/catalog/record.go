package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"missiontracker/internal/engine"
)

// record is the source-neutral shape shared by sheet rows and catalog files.
type record struct {
	ID            string
	Name          string
	Type          string
	Category      string
	Image         string
	Description   string
	Kind          string
	SubItems      []engine.SubItem
	ResetInterval string
	StockType     string
	ActiveDays    []string
	ActiveTime    string
	Locked        bool
	LockedItems   []string
}

// Issue describes a problem found while importing one entry. Skipped entries
// are left out of the result; the rest were imported with a default applied.
type Issue struct {
	Line    int
	ID      string
	Err     error
	Skipped bool
}

func (i Issue) String() string {
	action := "defaulted"
	if i.Skipped {
		action = "skipped"
	}
	if i.ID == "" {
		return fmt.Sprintf("line %d: %s (%s)", i.Line, i.Err, action)
	}
	return fmt.Sprintf("line %d %s: %s (%s)", i.Line, i.ID, i.Err, action)
}

var errMissingID = errors.New("missing id")

// mission converts r. A non-nil error means the entry cannot be used; soft
// problems are returned as warnings alongside a usable mission.
func (r record) mission() (engine.Mission, []error, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return engine.Mission{}, nil, errMissingID
	}

	cat := engine.Category(fold(r.Category))
	if !cat.IsValid() {
		return engine.Mission{}, nil, fmt.Errorf("invalid category: %q", r.Category)
	}

	var warns []error
	typ := engine.MissionType(fold(r.Type))
	if !typ.IsValid() {
		warns = append(warns, fmt.Errorf("invalid type: %q", r.Type))
		typ = typeFor(cat)
	}

	kind, err := engine.ParseKind(r.Kind)
	if err != nil {
		warns = append(warns, err)
		kind = engine.KindCheckbox
	}

	m := engine.Mission{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Type:        typ,
		Category:    cat,
		Image:       strings.TrimSpace(r.Image),
		Description: strings.TrimSpace(r.Description),
		Kind:        kind,
		SubItems:    r.SubItems,
	}
	if m.Name == "" {
		m.Name = id
	}

	if strings.TrimSpace(r.ResetInterval) != "" {
		c, err := engine.ParseCadence(r.ResetInterval)
		if err != nil {
			warns = append(warns, err)
		} else {
			m.ResetInterval = c
		}
	}

	if kind == engine.KindStock {
		res, err := engine.ParseResource(r.StockType)
		if err != nil {
			// A stock card without a counter tracks nothing.
			return engine.Mission{}, warns, err
		}
		m.Stock.Resource = res
	}

	if kind == engine.KindRaid {
		m.Raid.Locked = r.Locked
		for _, cell := range r.LockedItems {
			if cell = strings.TrimSpace(cell); cell != "" {
				m.Raid.LockedCells = append(m.Raid.LockedCells, cell)
			}
		}
	}

	for _, name := range r.ActiveDays {
		if strings.TrimSpace(name) == "" {
			continue
		}
		d, err := engine.ParseWeekday(fold(name))
		if err != nil {
			warns = append(warns, err)
			continue
		}
		if !hasDay(m.Activation.Days, d) {
			m.Activation.Days = append(m.Activation.Days, d)
		}
	}

	if strings.TrimSpace(r.ActiveTime) != "" {
		w, err := engine.ParseTimeWindow(r.ActiveTime)
		if err != nil {
			warns = append(warns, err)
		} else {
			m.Activation.Window = &w
		}
	}

	return m, warns, nil
}

// typeFor picks the type an entry without a valid one behaves as.
func typeFor(c engine.Category) engine.MissionType {
	switch c {
	case engine.CategoryDaily:
		return engine.MissionTypeDaily
	case engine.CategoryWeekly:
		return engine.MissionTypeWeekly
	default:
		return engine.MissionTypeEvent
	}
}

// fold normalises user-entered enum spellings such as "Friday" or "WEEKLY".
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func hasDay(days []time.Weekday, d time.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

// splitList splits on '|' or ',' and drops empty entries.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
