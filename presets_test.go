package f6k

import "testing"

// ---------------------------------------------------------------------------
// Presets pin the expected strategies
// ---------------------------------------------------------------------------

func TestDefaultValuePolicy(t *testing.T) {
	cfg := DefaultValuePolicy("lookup")

	if cfg.Strategy != StrategyDefaultValue {
		t.Fatalf("Strategy = %q, want %q", cfg.Strategy, StrategyDefaultValue)
	}
	if cfg.Name != "lookup" {
		t.Fatalf("Name = %q, want %q", cfg.Name, "lookup")
	}
	if !cfg.LogFallback {
		t.Fatal("LogFallback = false, want true")
	}
}

func TestFailFastPolicy(t *testing.T) {
	cfg := FailFastPolicy("submit")

	if cfg.Strategy != StrategyThrowError {
		t.Fatalf("Strategy = %q, want %q", cfg.Strategy, StrategyThrowError)
	}
	if cfg.LogFallback {
		t.Fatal("LogFallback = true, want false")
	}
}

func TestQuietDefaultPolicy(t *testing.T) {
	cfg := QuietDefaultPolicy("bulk")

	if cfg.Strategy != StrategyDefaultValue {
		t.Fatalf("Strategy = %q, want %q", cfg.Strategy, StrategyDefaultValue)
	}
	if cfg.LogFallback {
		t.Fatal("LogFallback = true, want false")
	}
}
