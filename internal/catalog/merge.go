package catalog

import "missiontracker/internal/engine"

// Merge returns base followed by every imported mission whose id is not yet
// present. Earlier sources win on collision, so built-ins always take
// precedence.
func Merge(base []engine.Mission, imports ...[]engine.Mission) []engine.Mission {
	seen := make(map[string]struct{}, len(base))
	out := make([]engine.Mission, 0, len(base))
	add := func(ms []engine.Mission) {
		for _, m := range ms {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			out = append(out, m)
		}
	}
	add(base)
	for _, ms := range imports {
		add(ms)
	}
	return out
}
