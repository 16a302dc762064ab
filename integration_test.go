package f6k_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/byte4ever/f6k"
	"github.com/byte4ever/f6k/effect"
)

// ---------------------------------------------------------------------------
// Engine decorating real filesystem effects
// ---------------------------------------------------------------------------

func TestIntegrationEngineOverFSHandler(t *testing.T) {
	dir := t.TempDir()
	handler := effect.NewFSHandler()

	e := f6k.NewEngine(
		f6k.Config{Strategy: f6k.StrategyDefaultValue},
		f6k.WithDefaultValue("<missing>"),
	)

	// Cold read falls back to the default.
	path := filepath.Join(dir, "settings.txt")

	result, err := e.Execute(
		context.Background(),
		effect.Run(handler, effect.ReadFile(path)),
	)
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if result != "<missing>" {
		t.Fatalf("Execute() = %q, want %q", result, "<missing>")
	}

	// After a write, the same descriptor succeeds primarily.
	if res := handler.Handle(effect.WriteFile(path, "dark-mode=on")); res.Status != effect.StatusOK {
		t.Fatalf("write Status = %v, want StatusOK", res.Status)
	}

	result, err = e.Execute(
		context.Background(),
		effect.Run(handler, effect.ReadFile(path)),
	)
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
	if result != "dark-mode=on" {
		t.Fatalf("Execute() = %q, want %q", result, "dark-mode=on")
	}

	s := e.Stats()
	if s.TotalOperations != 2 || s.PrimarySuccesses != 1 ||
		s.FallbackCount != 1 || s.FallbackSuccesses != 1 {
		t.Fatalf("stats = %+v, want 2/1/1/1", s)
	}
}

// ---------------------------------------------------------------------------
// Swapping the mock handler leaves the call path unchanged
// ---------------------------------------------------------------------------

func TestIntegrationHandlerSwap(t *testing.T) {
	run := func(h effect.Handler) (string, error) {
		e := f6k.NewEngine[string](f6k.Config{
			Strategy: f6k.StrategyThrowError,
		})

		return e.Execute(
			context.Background(),
			effect.Run(h, effect.ReadFile("/definitely/not/here")),
		)
	}

	// Real handler: the missing file exhausts the throw-error policy.
	if _, err := run(effect.NewFSHandler()); !errors.Is(err, f6k.ErrOperationFailed) {
		t.Fatalf("fs handler error = %v, want ErrOperationFailed", err)
	}

	// Mock handler: same call path, canned success.
	result, err := run(effect.MockHandler{Payload: "stub"})
	if err != nil {
		t.Fatalf("mock handler error = %v, want nil", err)
	}
	if result != "stub" {
		t.Fatalf("mock handler result = %q, want %q", result, "stub")
	}
}

// ---------------------------------------------------------------------------
// CacheFallback over effects serves the last good read
// ---------------------------------------------------------------------------

func TestIntegrationCacheFallbackOverEffects(t *testing.T) {
	dir := t.TempDir()
	handler := effect.NewFSHandler()
	path := filepath.Join(dir, "feed.txt")

	cf := f6k.NewCacheFallback(f6k.NewMapStore[string, string]())

	fetch := func(ctx context.Context, p string) (string, error) {
		return effect.Run(handler, effect.ReadFile(p))(ctx)
	}

	_ = handler.Handle(effect.WriteFile(path, "v1"))

	result, err := cf.Get(context.Background(), path, fetch)
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if result != "v1" {
		t.Fatalf("Get() = %q, want %q", result, "v1")
	}

	// The file disappears; the cached read is served.
	_ = handler.Handle(effect.DeleteFile(path))

	result, err = cf.Get(context.Background(), path, fetch)
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if result != "v1" {
		t.Fatalf("Get() = %q, want cached %q", result, "v1")
	}
}

// ---------------------------------------------------------------------------
// Registry aggregates engines running over effects
// ---------------------------------------------------------------------------

func TestIntegrationRegistryAggregation(t *testing.T) {
	reg := f6k.NewRegistry()
	mock := effect.MockHandler{Payload: "ok"}

	e1 := f6k.NewEngine(
		f6k.Config{Strategy: f6k.StrategyThrowError, Name: "reads"},
		f6k.WithRegistry[string](reg),
	)
	e2 := f6k.NewEngine(
		f6k.Config{Strategy: f6k.StrategyThrowError, Name: "writes"},
		f6k.WithRegistry[string](reg),
	)

	_, _ = e1.Execute(
		context.Background(),
		effect.Run(mock, effect.ReadFile("/a")),
	)
	_, _ = e2.Execute(
		context.Background(),
		effect.Run(mock, effect.WriteFile("/b", "x")),
	)
	_, _ = e2.Execute(
		context.Background(),
		effect.Run(effect.NewFSHandler(), effect.ReadFile("/nope")),
	)

	agg := reg.Aggregate()
	if agg.TotalOperations != 3 {
		t.Fatalf("Aggregate.TotalOperations = %d, want 3", agg.TotalOperations)
	}
	if agg.PrimarySuccesses != 2 {
		t.Fatalf("Aggregate.PrimarySuccesses = %d, want 2", agg.PrimarySuccesses)
	}
	if agg.TotalFailures != 1 {
		t.Fatalf("Aggregate.TotalFailures = %d, want 1", agg.TotalFailures)
	}
}
