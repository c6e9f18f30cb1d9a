package engine

import (
	"fmt"
	"strings"
)

func SubKey(missionID, subID string) string {
	return missionID + ":" + subID
}

func CellKey(missionID, subID string, d Difficulty) string {
	return missionID + ":" + subID + "_" + string(d)
}

// CompletionKeys lists the completion-map keys tracked for m: one per
// sub-item for stores, one per unlocked sub-item/difficulty cell for raids,
// and the mission id otherwise. Missions without sub-items are flat.
func CompletionKeys(m Mission) []string {
	if len(m.SubItems) == 0 {
		return []string{m.ID}
	}
	switch m.EffectiveKind() {
	case KindStore:
		out := make([]string, 0, len(m.SubItems))
		for _, sub := range m.SubItems {
			out = append(out, SubKey(m.ID, sub.ID))
		}
		return out
	case KindRaid:
		out := make([]string, 0, len(m.SubItems)*len(RaidDifficulties))
		for _, sub := range m.SubItems {
			for _, d := range RaidDifficulties {
				if m.CellLocked(sub.ID, d) {
					continue
				}
				out = append(out, CellKey(m.ID, sub.ID, d))
			}
		}
		return out
	default:
		return []string{m.ID}
	}
}

// FindMission returns the catalog entry with the given id.
func FindMission(missions []Mission, id string) (Mission, bool) {
	for _, m := range missions {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// ValidateKey resolves key to its owning mission and rejects keys that no
// toggle should write: unknown keys, locked raid cells, and counter-style
// missions.
func ValidateKey(missions []Mission, key string) (Mission, error) {
	id := key
	if i := strings.Index(key, ":"); i >= 0 {
		id = key[:i]
	}
	m, ok := FindMission(missions, id)
	if !ok {
		return Mission{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	switch m.EffectiveKind() {
	case KindRuins, KindStock:
		return Mission{}, fmt.Errorf("mission %s is a %s counter, not a checklist", m.ID, m.EffectiveKind())
	}
	for _, k := range CompletionKeys(m) {
		if k == key {
			return m, nil
		}
	}
	if m.EffectiveKind() == KindRaid {
		for _, sub := range m.SubItems {
			for _, d := range RaidDifficulties {
				if CellKey(m.ID, sub.ID, d) == key {
					return Mission{}, LockedError{Key: key}
				}
			}
		}
	}
	return Mission{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}
