// Package otter provides an adapter for the Otter cache library,
// implementing the f6k.Store interface for use with f6k.CacheFallback.
package otter

import (
	"github.com/maypok86/otter"

	"github.com/byte4ever/f6k"
)

// adapter wraps an otter.Cache to implement f6k.Store.
type adapter[K comparable, V any] struct {
	cache otter.Cache[K, V]
}

// MustNew creates an f6k.Store backed by an Otter cache.
// MaxSize from [f6k.StoreConfig] configures the underlying cache capacity;
// Otter evicts on capacity, so absence of a key is always a possible answer
// even after a Set. It panics if the underlying Otter cache cannot be built.
//
//nolint:ireturn,varnamelen // generic type params K,V are idiomatic in Go
func MustNew[K comparable, V any](cfg f6k.StoreConfig) f6k.Store[K, V] {
	cache, err := otter.MustBuilder[K, V](cfg.MaxSize).Build()
	if err != nil {
		panic("f6k/otter: failed to build cache: " + err.Error())
	}

	return &adapter[K, V]{cache: cache}
}

// Get retrieves a stored value by key.
//
//nolint:ireturn // generic type parameter V, not an interface
func (a *adapter[K, V]) Get(key K) (V, bool) {
	return a.cache.Get(key)
}

// Set stores a value under key.
func (a *adapter[K, V]) Set(key K, value V) {
	a.cache.Set(key, value)
}

// Delete removes a stored entry by key.
func (a *adapter[K, V]) Delete(key K) {
	a.cache.Delete(key)
}

// Clear removes all entries.
func (a *adapter[K, V]) Clear() {
	a.cache.Clear()
}
