package f6k

import (
	"context"

	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Engine[T] — the central policy type
// ---------------------------------------------------------------------------

// Engine wraps fallible function calls with a fallback policy and records
// execution statistics. Use [NewEngine] or [NewEngineWithDefault] with
// functional options to configure it.
//
// An Engine is not safe for concurrent use; confine an instance to one
// logical thread of control or synchronise access externally.
type Engine[T any] struct {
	cfg        Config
	defaultVal T
	hasDefault bool
	stats      Stats
	hooks      Hooks
	logger     *zap.Logger
	registered bool
}

// EngineOption configures an [Engine].
type EngineOption[T any] func(*Engine[T])

// WithDefaultValue sets the value returned by the default-value strategy.
// The zero value of T is a legal default; setting it is distinct from not
// configuring a default at all.
func WithDefaultValue[T any](val T) EngineOption[T] {
	return func(e *Engine[T]) {
		e.defaultVal = val
		e.hasDefault = true
	}
}

// WithHooks sets the lifecycle hooks for the engine.
func WithHooks[T any](h Hooks) EngineOption[T] {
	return func(e *Engine[T]) {
		e.hooks = h
	}
}

// WithLogger sets the logger used for fallback diagnostics. Without it the
// engine logs nothing regardless of [Config.LogFallback].
func WithLogger[T any](logger *zap.Logger) EngineOption[T] {
	return func(e *Engine[T]) {
		e.logger = logger
	}
}

// WithRegistry registers the engine with reg instead of the default
// registry.
func WithRegistry[T any](reg *Registry) EngineOption[T] {
	return func(e *Engine[T]) {
		reg.Register(e)
		e.registered = true
	}
}

// NewEngine creates an [Engine] with the given policy configuration.
// Named engines auto-register with [DefaultRegistry] unless [WithRegistry]
// points them elsewhere. Callers using strategies other than
// [StrategyDefaultValue] must not rely on a default value being set.
func NewEngine[T any](cfg Config, opts ...EngineOption[T]) *Engine[T] {
	e := &Engine[T]{
		cfg:    cfg,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if cfg.Name != "" && !e.registered {
		DefaultRegistry().Register(e)
	}

	return e
}

// NewEngineWithDefault creates an [Engine] pinned to the default-value
// strategy with val as its default.
func NewEngineWithDefault[T any](
	name string,
	val T,
	opts ...EngineOption[T],
) *Engine[T] {
	allOpts := append([]EngineOption[T]{WithDefaultValue(val)}, opts...)

	return NewEngine(Config{
		Strategy: StrategyDefaultValue,
		Name:     name,
	}, allOpts...)
}

// Name returns the policy's name.
func (e *Engine[T]) Name() string { return e.cfg.Name }

// Execute runs fn and applies the configured strategy on failure.
//
// Only [StrategyDefaultValue] and [StrategyThrowError] are natively handled
// here; the remaining strategies fail with [ErrUnsupportedStrategy] and are
// realized by [Engine.ExecuteWithFallback], [DoFallbackFunc], [TryDo], or
// [CacheFallback]. On any failure path the primary operation's original
// error is discarded; Execute surfaces only the three policy-exhaustion
// sentinels.
//
//nolint:ireturn // generic type parameter T, not an interface
func (e *Engine[T]) Execute(
	ctx context.Context,
	fn func(context.Context) (T, error),
) (T, error) {
	e.stats.TotalOperations++

	result, err := fn(ctx)
	if err == nil {
		e.stats.PrimarySuccesses++

		return result, nil
	}

	e.stats.FallbackCount++
	e.hooks.emitFallbackUsed(err)
	e.logFallback(err)

	var zero T

	switch e.cfg.Strategy {
	case StrategyDefaultValue:
		if e.hasDefault {
			e.stats.FallbackSuccesses++
			e.hooks.emitDefaultServed()

			return e.defaultVal, nil
		}

		return zero, e.exhaust(ErrNoFallbackValue)

	case StrategyThrowError:
		return zero, e.exhaust(ErrOperationFailed)

	default:
		// fallback_operation, cached_value and return_null have dedicated
		// entry points; through Execute they are a policy error.
		return zero, e.exhaust(ErrUnsupportedStrategy)
	}
}

// ExecuteWithFallback runs fn and substitutes fallbackVal on failure.
// It never fails: a supplied fallback value always counts as a successful
// recovery, and the primary operation's error is discarded.
//
//nolint:ireturn // generic type parameter T, not an interface
func (e *Engine[T]) ExecuteWithFallback(
	ctx context.Context,
	fn func(context.Context) (T, error),
	fallbackVal T,
) T {
	e.stats.TotalOperations++

	result, err := fn(ctx)
	if err == nil {
		e.stats.PrimarySuccesses++

		return result
	}

	e.stats.FallbackCount++
	e.stats.FallbackSuccesses++
	e.hooks.emitFallbackUsed(err)
	e.logFallback(err)

	return fallbackVal
}

// Stats returns a snapshot of the engine's counters. The returned value is
// a copy; mutating it does not affect the engine.
func (e *Engine[T]) Stats() Stats { return e.stats }

// StatsSnapshot implements [StatsReporter].
func (e *Engine[T]) StatsSnapshot() Stats { return e.stats }

// ResetStats zeroes all counters.
func (e *Engine[T]) ResetStats() { e.stats = Stats{} }

// Middleware returns the engine's [Execute] wrapping as a [Middleware] so it
// can be composed over any function in a decorator chain.
func (e *Engine[T]) Middleware() Middleware[T] {
	return func(
		next func(context.Context) (T, error),
	) func(context.Context) (T, error) {
		return func(ctx context.Context) (T, error) {
			return e.Execute(ctx, next)
		}
	}
}

// exhaust records a policy-exhaustion failure and returns its sentinel.
func (e *Engine[T]) exhaust(err error) error {
	e.stats.TotalFailures++
	e.hooks.emitPolicyExhausted(err)

	return err
}

func (e *Engine[T]) logFallback(err error) {
	if !e.cfg.LogFallback {
		return
	}

	e.logger.Warn("fallback path taken",
		zap.String("policy", e.cfg.Name),
		zap.String("strategy", string(e.cfg.Strategy)),
		zap.Error(err),
	)
}
