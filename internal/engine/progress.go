package engine

import "math"

// Progress counts tracked units for one category.
type Progress struct {
	Category Category
	Done     int
	Total    int
}

// Percent is Done/Total rounded to the nearest integer; 0 when nothing is tracked.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int(math.Round(float64(p.Done) / float64(p.Total) * 100))
}

// MissionProgress counts the units of a single mission. Stores and raids
// count one unit per tracked key (locked cells excluded), ruins count as a
// single unit done once a floor is recorded, and stock counters are not
// completion-tracked.
func MissionProgress(m Mission, st State) (done, total int) {
	switch m.EffectiveKind() {
	case KindStock:
		return 0, 0
	case KindRuins:
		if st.RuinsFloor > 0 {
			return 1, 1
		}
		return 0, 1
	}
	for _, key := range CompletionKeys(m) {
		total++
		if st.IsCompleted(key) {
			done++
		}
	}
	return done, total
}

// CategoryProgress sums MissionProgress over the missions of category c.
// Pass the visible missions to exclude events outside their window.
func CategoryProgress(missions []Mission, st State, c Category) Progress {
	p := Progress{Category: c}
	for _, m := range missions {
		if m.Category != c {
			continue
		}
		d, t := MissionProgress(m, st)
		p.Done += d
		p.Total += t
	}
	return p
}
