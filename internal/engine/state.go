package engine

import (
	"encoding/json"
	"fmt"
	"time"
)

// UndoLimit caps the undo history.
const UndoLimit = 20

// State is the persisted progress blob. Field names match the browser
// tracker's blob so exported state decodes as-is.
type State struct {
	Completed             map[string]*time.Time `json:"completed"`
	RuinsFloor            int                   `json:"ruinsFloor"`
	BossKeys              int                   `json:"bossKeys"`
	EliteKeys             int                   `json:"eliteKeys"`
	LastResetTime         time.Time             `json:"lastResetTime"`
	LastBiWeeklyResetTime *time.Time            `json:"lastBiWeeklyResetTime,omitempty"`
	UndoStack             []string              `json:"undoStack"`
}

func DefaultState(now time.Time) State {
	return State{
		Completed:     map[string]*time.Time{},
		LastResetTime: now,
		UndoStack:     []string{},
	}
}

// DecodeState parses a persisted blob. Callers treat an error as "no prior
// state" and fall back to DefaultState.
func DecodeState(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return st.normalized(), nil
}

func EncodeState(st State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// normalized fills nil collections, drops cleared entries and clamps
// counters that an older or hand-edited blob may carry.
func (st State) normalized() State {
	out := st.Clone()
	for k, v := range out.Completed {
		if v == nil || v.IsZero() {
			delete(out.Completed, k)
		}
	}
	out.RuinsFloor = clamp(out.RuinsFloor, 0, MaxRuinsFloor)
	out.BossKeys = clamp(out.BossKeys, 0, MaxKeys)
	out.EliteKeys = clamp(out.EliteKeys, 0, MaxKeys)
	if len(out.UndoStack) > UndoLimit {
		out.UndoStack = out.UndoStack[:UndoLimit]
	}
	return out
}

// Clone returns a deep copy.
func (st State) Clone() State {
	out := st
	out.Completed = make(map[string]*time.Time, len(st.Completed))
	for k, v := range st.Completed {
		if v != nil {
			t := *v
			v = &t
		}
		out.Completed[k] = v
	}
	if st.LastBiWeeklyResetTime != nil {
		t := *st.LastBiWeeklyResetTime
		out.LastBiWeeklyResetTime = &t
	}
	out.UndoStack = append([]string{}, st.UndoStack...)
	return out
}

func (st State) IsCompleted(key string) bool {
	return st.Completed[key] != nil
}

func (st State) Stock(r Resource) int {
	switch r {
	case ResourceBoss:
		return st.BossKeys
	case ResourceElite:
		return st.EliteKeys
	default:
		return 0
	}
}

func (st *State) setStock(r Resource, v int) {
	switch r {
	case ResourceBoss:
		st.BossKeys = v
	case ResourceElite:
		st.EliteKeys = v
	}
}

// Toggle flips key. Completing stamps now and pushes key onto the undo stack;
// clearing removes every occurrence of key from the stack.
func (st State) Toggle(key string, now time.Time) State {
	out := st.Clone()
	if out.IsCompleted(key) {
		delete(out.Completed, key)
		stack := out.UndoStack[:0]
		for _, k := range out.UndoStack {
			if k != key {
				stack = append(stack, k)
			}
		}
		out.UndoStack = stack
		return out
	}

	t := now
	out.Completed[key] = &t
	out.UndoStack = append([]string{key}, out.UndoStack...)
	if len(out.UndoStack) > UndoLimit {
		out.UndoStack = out.UndoStack[:UndoLimit]
	}
	return out
}

// Undo reverses the most recent "mark complete". ok is false when the
// history is empty.
func (st State) Undo() (out State, key string, ok bool) {
	if len(st.UndoStack) == 0 {
		return st, "", false
	}
	out = st.Clone()
	key = out.UndoStack[0]
	delete(out.Completed, key)
	out.UndoStack = out.UndoStack[1:]
	return out, key, true
}

// SetStock overwrites a counter, clamped to [0, MaxKeys].
func (st State) SetStock(r Resource, v int) State {
	out := st.Clone()
	out.setStock(r, clamp(v, 0, MaxKeys))
	return out
}

// SetRuinsFloor overwrites the floor, clamped to [0, MaxRuinsFloor].
func (st State) SetRuinsFloor(v int) State {
	out := st.Clone()
	out.RuinsFloor = clamp(v, 0, MaxRuinsFloor)
	return out
}

// ResetAllState is the destructive reset: defaults everywhere except the key
// counters, which are refilled.
func ResetAllState(now time.Time) State {
	st := DefaultState(now)
	for _, r := range Resources {
		st.setStock(r, MaxKeys)
	}
	return st
}
