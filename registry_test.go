package f6k

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Register + Report reflect per-policy counters and rates
// ---------------------------------------------------------------------------

func TestRegistryReport(t *testing.T) {
	reg := NewRegistry()

	e1 := NewEngine(
		Config{Strategy: StrategyDefaultValue, Name: "lookup"},
		WithDefaultValue("d"),
		WithRegistry[string](reg),
	)
	e2 := NewEngine(
		Config{Strategy: StrategyThrowError, Name: "submit"},
		WithRegistry[string](reg),
	)

	_, _ = e1.Execute(context.Background(), succeedWith("ok"))
	_, _ = e1.Execute(
		context.Background(),
		failWith[string](errors.New("boom")),
	)
	_, _ = e2.Execute(
		context.Background(),
		failWith[string](errors.New("boom")),
	)

	report := reg.Report()

	if len(report.Policies) != 2 {
		t.Fatalf("Policies count = %d, want 2", len(report.Policies))
	}

	byName := map[string]PolicyReport{}
	for _, p := range report.Policies {
		byName[p.Name] = p
	}

	lookup, ok := byName["lookup"]
	if !ok {
		t.Fatal("lookup missing from report")
	}
	if lookup.FallbackRate != 0.5 {
		t.Fatalf("lookup FallbackRate = %v, want 0.5", lookup.FallbackRate)
	}
	if lookup.SuccessRate != 1 {
		t.Fatalf("lookup SuccessRate = %v, want 1", lookup.SuccessRate)
	}

	submit, ok := byName["submit"]
	if !ok {
		t.Fatal("submit missing from report")
	}
	if submit.Stats.TotalFailures != 1 {
		t.Fatalf(
			"submit TotalFailures = %d, want 1",
			submit.Stats.TotalFailures,
		)
	}

	wantAggregate := Stats{
		TotalOperations:   3,
		PrimarySuccesses:  1,
		FallbackCount:     2,
		FallbackSuccesses: 1,
		TotalFailures:     1,
	}
	if report.Aggregate != wantAggregate {
		t.Fatalf("Aggregate = %+v, want %+v", report.Aggregate, wantAggregate)
	}
}

// ---------------------------------------------------------------------------
// Aggregate folds snapshots via the stats monoid
// ---------------------------------------------------------------------------

func TestRegistryAggregateMatchesReport(t *testing.T) {
	reg := NewRegistry()

	e := NewEngine(
		Config{Strategy: StrategyThrowError, Name: "only"},
		WithRegistry[int](reg),
	)

	_, _ = e.Execute(context.Background(), succeedWith(1))
	_, _ = e.Execute(context.Background(), failWith[int](errors.New("x")))

	if got, want := reg.Aggregate(), reg.Report().Aggregate; got != want {
		t.Fatalf("Aggregate() = %+v, Report().Aggregate = %+v", got, want)
	}
}

// ---------------------------------------------------------------------------
// Empty registry aggregates to the identity
// ---------------------------------------------------------------------------

func TestRegistryEmptyAggregate(t *testing.T) {
	reg := NewRegistry()

	if got := reg.Aggregate(); got != (Stats{}) {
		t.Fatalf("Aggregate() = %+v, want zero", got)
	}

	report := reg.Report()
	if len(report.Policies) != 0 {
		t.Fatalf("Policies count = %d, want 0", len(report.Policies))
	}
}

// ---------------------------------------------------------------------------
// CacheFallback instances report alongside engines
// ---------------------------------------------------------------------------

func TestRegistryMixedReporters(t *testing.T) {
	reg := NewRegistry()

	e := NewEngine(
		Config{Strategy: StrategyThrowError, Name: "engine"},
		WithRegistry[string](reg),
	)

	// An unnamed instance skips auto-registration; attach it explicitly.
	cf := NewCacheFallback(NewMapStore[string, string]())
	reg.Register(cf)

	_, _ = e.Execute(context.Background(), succeedWith("ok"))
	_, _ = cf.Get(
		context.Background(),
		"k",
		func(_ context.Context, _ string) (string, error) {
			return "v", nil
		},
	)

	report := reg.Report()
	if len(report.Policies) != 2 {
		t.Fatalf("Policies count = %d, want 2", len(report.Policies))
	}
	if report.Aggregate.TotalOperations != 2 {
		t.Fatalf(
			"Aggregate.TotalOperations = %d, want 2",
			report.Aggregate.TotalOperations,
		)
	}
}

// ---------------------------------------------------------------------------
// DefaultRegistry is a singleton
// ---------------------------------------------------------------------------

func TestDefaultRegistrySingleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Fatal("DefaultRegistry() returned distinct instances")
	}
}
