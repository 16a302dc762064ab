// Package ristretto provides an adapter for the Ristretto cache library,
// implementing the f6k.Store interface for use with f6k.CacheFallback.
package ristretto

import (
	"github.com/dgraph-io/ristretto/v2"

	"github.com/byte4ever/f6k"
)

type (
	// Key is the subset of ristretto.Key types that are also comparable,
	// required by the f6k.Store interface.
	Key interface {
		uint64 | string | byte | int | int32 | uint32 | int64
	}

	// adapter wraps a ristretto.Cache to implement f6k.Store.
	adapter[K Key, V any] struct {
		cache *ristretto.Cache[K, V]
	}
)

// MustNew creates an f6k.Store backed by a Ristretto cache.
// K must satisfy [Key] (comparable subset of ristretto key types).
// MaxSize from [f6k.StoreConfig] configures the cache capacity; Ristretto
// may evict under memory pressure, so absence of a key is always a possible
// answer even after a Set. Ristretto recommends NumCounters = 10 * MaxSize
// for good performance. It panics if the underlying Ristretto cache cannot
// be built.
//
//nolint:ireturn,varnamelen // generic type params K,V are idiomatic in Go
func MustNew[K Key, V any](cfg f6k.StoreConfig) f6k.Store[K, V] {
	// nolint:mnd // Ristretto recommends 10x max size for num counters and 64
	// buffer items.
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: int64(cfg.MaxSize) * 10,
		MaxCost:     int64(cfg.MaxSize),
		BufferItems: 64,
	})
	if err != nil {
		panic("f6k/ristretto: failed to build cache: " + err.Error())
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
	a.cache.Set(key, value, 1)
}

// Delete removes a stored entry by key.
func (a *adapter[K, V]) Delete(key K) {
	a.cache.Del(key)
}

// Clear removes all entries.
func (a *adapter[K, V]) Clear() {
	a.cache.Clear()
}
