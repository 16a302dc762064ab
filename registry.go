package f6k

import (
	"sync"
	"sync/atomic"
)

// ---------------------------------------------------------------------------
// StatsReporter and Registry — fleet-wide statistics reporting
// ---------------------------------------------------------------------------.

type (
	// StatsReporter is implemented by [Engine] and [CacheFallback]
	// instances. The interface is non-generic, allowing policies with
	// different type parameters to be reported side by side.
	StatsReporter interface {
		// Name returns the policy's name.
		Name() string
		// StatsSnapshot returns a copy of the policy's current counters.
		StatsSnapshot() Stats
	}

	// PolicyReport is the reported state of a single policy.
	PolicyReport struct {
		Name         string  `json:"name"`
		Stats        Stats   `json:"stats"`
		FallbackRate float64 `json:"fallback_rate"`
		SuccessRate  float64 `json:"success_rate"`
	}

	// RegistryReport is the result of snapshotting all registered policies.
	RegistryReport struct {
		Policies  []PolicyReport `json:"policies"`
		Aggregate Stats          `json:"aggregate"`
	}

	// Registry tracks StatsReporter instances and derives fleet-wide
	// statistics.
	//
	// Pattern: Singleton — DefaultRegistry uses sync.OnceValue for safe lazy
	// init; explicit registries can be created for testing or multi-tenant
	// scenarios.
	Registry struct {
		reporters atomic.Pointer[[]StatsReporter]
		configs   map[string]PolicyConfig
		mu        sync.Mutex
	}
)

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}

	var empty []StatsReporter

	r.reporters.Store(&empty)

	return r
}

// Register adds a StatsReporter to the registry.
// This is typically called during startup by NewEngine or NewCacheFallback.
// It is safe for concurrent use but intended for initialization only.
func (r *Registry) Register(sr StatsReporter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.reporters.Load()
	// Create a new slice (copy-on-write) to avoid mutating the slice
	// that concurrent readers may be iterating.
	updated := make([]StatsReporter, len(old), len(old)+1)
	copy(updated, old)
	updated = append(updated, sr)
	r.reporters.Store(&updated)
}

// Report iterates all registered reporters and builds a RegistryReport with
// per-policy counters, derived rates, and the fleet-wide aggregate.
func (r *Registry) Report() RegistryReport {
	reporters := *r.reporters.Load()

	report := RegistryReport{
		Policies: make([]PolicyReport, 0, len(reporters)),
	}

	for _, sr := range reporters {
		snap := sr.StatsSnapshot()
		report.Policies = append(report.Policies, PolicyReport{
			Name:         sr.Name(),
			Stats:        snap,
			FallbackRate: snap.FallbackRate(),
			SuccessRate:  snap.SuccessRate(),
		})
		report.Aggregate = MergeStats(report.Aggregate, snap)
	}

	return report
}

// Aggregate folds all registered policies' snapshots into a single Stats
// value using [StatsMonoid].
func (r *Registry) Aggregate() Stats {
	reporters := *r.reporters.Load()

	snaps := make([]Stats, 0, len(reporters))
	for _, sr := range reporters {
		snaps = append(snaps, sr.StatsSnapshot())
	}

	return StatsMonoid().Fold(snaps)
}

// DefaultRegistry returns the package-level global registry, creating it
// on first call.
//
// Pattern: Singleton — lazy initialization via sync.OnceValue ensures exactly
// one global registry exists and is safe for concurrent access.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
