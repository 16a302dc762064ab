package f6k

import "github.com/byte4ever/f6k/monoid"

// ---------------------------------------------------------------------------
// Stats — execution counters shared by Engine and CacheFallback
// ---------------------------------------------------------------------------.

// Stats aggregates execution counters for a fallback policy. Counters are
// monotonically non-decreasing for the lifetime of the owning policy and are
// zeroed only by an explicit reset. Fields are plain values; synchronization
// is the owner's concern (policies are single-caller by design).
type Stats struct {
	// TotalOperations counts every call to the policy's execute entry point,
	// success or failure.
	TotalOperations uint64 `json:"total_operations"`
	// PrimarySuccesses counts calls where the primary operation returned a
	// value.
	PrimarySuccesses uint64 `json:"primary_successes"`
	// FallbackCount counts calls where the primary operation failed and a
	// fallback path was attempted, whether or not it recovered.
	FallbackCount uint64 `json:"fallback_count"`
	// FallbackSuccesses counts fallback attempts that produced a usable
	// value.
	FallbackSuccesses uint64 `json:"fallback_successes"`
	// TotalFailures counts calls where neither the primary nor the fallback
	// path produced a value.
	TotalFailures uint64 `json:"total_failures"`
}

// FallbackRate returns FallbackCount / TotalOperations, or 0 when no
// operations have been recorded.
func (s Stats) FallbackRate() float64 {
	if s.TotalOperations == 0 {
		return 0
	}

	return float64(s.FallbackCount) / float64(s.TotalOperations)
}

// SuccessRate returns (PrimarySuccesses + FallbackSuccesses) /
// TotalOperations. A policy that has never run is vacuously fully
// successful, so the zero-operation rate is 1.
func (s Stats) SuccessRate() float64 {
	if s.TotalOperations == 0 {
		return 1
	}

	return float64(s.PrimarySuccesses+s.FallbackSuccesses) /
		float64(s.TotalOperations)
}

// MergeStats returns the counter-wise sum of a and b. Merging is associative
// with the zero Stats as identity, which lets snapshots from several
// policies be folded into a fleet-wide aggregate (see [StatsMonoid]).
func MergeStats(a, b Stats) Stats {
	return Stats{
		TotalOperations:   a.TotalOperations + b.TotalOperations,
		PrimarySuccesses:  a.PrimarySuccesses + b.PrimarySuccesses,
		FallbackCount:     a.FallbackCount + b.FallbackCount,
		FallbackSuccesses: a.FallbackSuccesses + b.FallbackSuccesses,
		TotalFailures:     a.TotalFailures + b.TotalFailures,
	}
}

// StatsMonoid returns the [monoid.Monoid] over [Stats] with the zero Stats
// as identity and [MergeStats] as combine. [Registry.Aggregate] folds
// per-policy snapshots with it.
func StatsMonoid() monoid.Monoid[Stats] {
	return monoid.New(
		func() Stats { return Stats{} },
		MergeStats,
	)
}
