package f6k

import (
	"context"

	"go.uber.org/zap"
)

type (
	// CacheFallback wraps a function call with keyed last-known-good
	// caching. On success, the result is stored in the underlying [Store].
	// On failure, the stored value for that key is returned if available;
	// otherwise the fetch's own error is re-surfaced unchanged.
	//
	// Staleness is unbounded: entries persist until overwritten by a later
	// success, removed by [CacheFallback.ClearCache], or preloaded over.
	// How stale is too stale is entirely the caller's concern.
	//
	// CacheFallback is a standalone wrapper — it is not driven by an
	// [Engine]. Compose it with an Engine by calling Engine.Execute inside
	// the fetch function passed to [CacheFallback.Get].
	CacheFallback[K comparable, V any] struct {
		store  Store[K, V]
		hooks  Hooks
		logger *zap.Logger
		stats  Stats
		name   string
	}

	// CacheFallbackOption configures a [CacheFallback].
	CacheFallbackOption[K comparable, V any] func(*CacheFallback[K, V])
)

// CacheName sets the policy name used in diagnostics and registry
// snapshots. Named instances auto-register with [DefaultRegistry].
func CacheName[K comparable, V any](name string) CacheFallbackOption[K, V] {
	return func(cf *CacheFallback[K, V]) {
		cf.name = name
	}
}

// CacheHooks sets the lifecycle hooks for the instance.
func CacheHooks[K comparable, V any](h Hooks) CacheFallbackOption[K, V] {
	return func(cf *CacheFallback[K, V]) {
		cf.hooks = h
	}
}

// CacheLogger sets the logger used for stale-serve diagnostics.
func CacheLogger[K comparable, V any](
	logger *zap.Logger,
) CacheFallbackOption[K, V] {
	return func(cf *CacheFallback[K, V]) {
		cf.logger = logger
	}
}

// NewCacheFallback creates a keyed fallback cache backed by the given
// [Store]. Pass [NewMapStore] for the default unbounded in-memory mapping.
func NewCacheFallback[K comparable, V any](
	store Store[K, V],
	opts ...CacheFallbackOption[K, V],
) *CacheFallback[K, V] {
	cf := &CacheFallback[K, V]{
		store:  store,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cf)
	}

	if cf.name != "" {
		DefaultRegistry().Register(cf)
	}

	return cf
}

// Get executes fetch with the given key. On success, the result is stored
// under key (best-effort; storage is invisible to the caller). On failure,
// a previously stored value is returned if one exists; otherwise the
// original fetch error is returned unchanged — Get never substitutes a
// policy error of its own.
//
//nolint:ireturn // generic type parameter V, not an interface
func (cf *CacheFallback[K, V]) Get(
	ctx context.Context,
	key K,
	fetch func(context.Context, K) (V, error),
) (V, error) {
	cf.stats.TotalOperations++

	result, err := fetch(ctx, key)
	if err == nil {
		cf.store.Set(key, result)
		cf.stats.PrimarySuccesses++
		cf.hooks.emitCacheRefreshed()

		return result, nil
	}

	cf.stats.FallbackCount++
	cf.hooks.emitFallbackUsed(err)

	// Failure: check for a stored entry.
	if cached, ok := cf.store.Get(key); ok {
		cf.stats.FallbackSuccesses++
		cf.hooks.emitStaleServed()
		cf.logger.Warn("serving cached value after fetch failure",
			zap.String("policy", cf.name),
			zap.Error(err),
		)

		return cached, nil
	}

	// No stored entry: return original error.
	cf.stats.TotalFailures++
	cf.hooks.emitPolicyExhausted(err)

	var zero V

	return zero, err //nolint:wrapcheck // caller's error returned as-is
}

// Preload stores a value under key before any fetch occurs, seeding the
// fallback path.
func (cf *CacheFallback[K, V]) Preload(key K, value V) {
	cf.store.Set(key, value)
}

// ClearCache removes all stored entries. Subsequent failed fetches behave
// as a cold cache until repopulated by successes or preloads.
func (cf *CacheFallback[K, V]) ClearCache() {
	cf.store.Clear()
}

// Name returns the policy's name.
func (cf *CacheFallback[K, V]) Name() string { return cf.name }

// Stats returns a snapshot of the instance's counters.
func (cf *CacheFallback[K, V]) Stats() Stats { return cf.stats }

// StatsSnapshot implements [StatsReporter].
func (cf *CacheFallback[K, V]) StatsSnapshot() Stats { return cf.stats }

// ResetStats zeroes all counters.
func (cf *CacheFallback[K, V]) ResetStats() { cf.stats = Stats{} }
