package f6k

import "fmt"

// Strategy selects the behavior taken when a primary operation fails.
// The set is closed; exactly one strategy is active per policy instance.
type Strategy string

const (
	// StrategyDefaultValue returns a preconfigured default on failure.
	StrategyDefaultValue Strategy = "default_value"
	// StrategyFallbackOperation runs an alternate operation on failure.
	// Realized by [DoFallbackFunc]; not natively handled by [Engine.Execute].
	StrategyFallbackOperation Strategy = "fallback_operation"
	// StrategyCachedValue serves a previously stored value on failure.
	// Realized by [CacheFallback]; not natively handled by [Engine.Execute].
	StrategyCachedValue Strategy = "cached_value"
	// StrategyThrowError propagates a policy-level failure on failure.
	StrategyThrowError Strategy = "throw_error"
	// StrategyReturnNil yields an absent value on failure.
	// Realized by [TryDo]; not natively handled by [Engine.Execute].
	StrategyReturnNil Strategy = "return_null"
)

// ParseStrategy maps a strategy name from configuration to a [Strategy].
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyDefaultValue,
		StrategyFallbackOperation,
		StrategyCachedValue,
		StrategyThrowError,
		StrategyReturnNil:
		return Strategy(name), nil
	default:
		return "", fmt.Errorf("unknown fallback strategy: %q", name)
	}
}

// Config holds the policy configuration for an [Engine].
type Config struct {
	// Strategy is the behavior taken on primary failure.
	Strategy Strategy
	// Name identifies the policy in diagnostics and registry snapshots.
	// The engine never interprets it.
	Name string
	// LogFallback enables a diagnostic log entry whenever a fallback path
	// is taken.
	LogFallback bool
}
