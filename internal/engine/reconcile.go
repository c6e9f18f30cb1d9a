package engine

import "time"

// ReconcileResult describes what a reconciliation pass changed.
type ReconcileResult struct {
	Cleared        []string
	Increments     int
	BiWeeklyStamp  bool
	AccrualStamped bool
}

// Changed reports whether the pass modified any field.
func (r ReconcileResult) Changed() bool {
	return len(r.Cleared) > 0 || r.Increments > 0 || r.BiWeeklyStamp || r.AccrualStamped
}

// Reconcile applies the reset decision to every tracked key of every mission,
// accrues key stock for daily boundaries crossed since the last accrual, and
// stamps the bi-weekly marker when a new boundary has been crossed.
// Running it twice at the same instant changes nothing the second time.
func (s Schedule) Reconcile(missions []Mission, st State, now time.Time) (State, ReconcileResult) {
	out := st.Clone()
	var res ReconcileResult

	for _, m := range missions {
		cadence := EffectiveCadence(m)
		for _, key := range CompletionKeys(m) {
			if s.ShouldReset(out.Completed[key], cadence, now) {
				delete(out.Completed, key)
				res.Cleared = append(res.Cleared, key)
			}
		}
	}

	if out.LastResetTime.IsZero() {
		out.LastResetTime = now
		res.AccrualStamped = true
	} else if inc := AccruedIncrements(out.LastResetTime, now); inc > 0 {
		for _, r := range Resources {
			out.setStock(r, clamp(out.Stock(r)+inc, 0, MaxKeys))
		}
		out.LastResetTime = now
		res.Increments = inc
	}

	if out.LastBiWeeklyResetTime == nil || s.ShouldReset(out.LastBiWeeklyResetTime, CadenceBiWeekly, now) {
		t := now
		out.LastBiWeeklyResetTime = &t
		res.BiWeeklyStamp = true
	}

	return out, res
}
