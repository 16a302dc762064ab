// Package f6k provides policy-driven fallback handling for Go applications.
//
// The central type is Engine[T], which wraps fallible function calls with a
// fallback strategy (static default, substitute value, or fail-fast) while
// recording execution statistics. CacheFallback[K, V] specializes the
// last-known-good strategy with a keyed store that is refreshed on success
// and consulted on failure. The companion effect package represents
// side-effecting operations as inert descriptors interpreted by swappable
// handlers, so the same call path serves production I/O and tests.
package f6k
