package f6k

// Pattern: Factory Function — each preset produces a ready-made policy
// configuration for a common use case, avoiding boilerplate.

// DefaultValuePolicy returns a [Config] that serves a configured default on
// failure and logs every fallback. Pair it with [WithDefaultValue].
func DefaultValuePolicy(name string) Config {
	return Config{
		Strategy:    StrategyDefaultValue,
		Name:        name,
		LogFallback: true,
	}
}

// FailFastPolicy returns a [Config] that converts any primary failure into
// [ErrOperationFailed] without logging, for callers that only need accurate
// failure counters.
func FailFastPolicy(name string) Config {
	return Config{
		Strategy: StrategyThrowError,
		Name:     name,
	}
}

// QuietDefaultPolicy returns a default-value [Config] with fallback logging
// disabled, for high-volume paths where recoveries are routine.
func QuietDefaultPolicy(name string) Config {
	return Config{
		Strategy: StrategyDefaultValue,
		Name:     name,
	}
}
