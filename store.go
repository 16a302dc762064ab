package f6k

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

type (
	// Store is the interface that key-value store adapters must implement
	// for use with [CacheFallback]. Entries never expire on their own;
	// removal happens only through Delete and Clear.
	Store[K comparable, V any] interface {
		// Get retrieves a stored value by key. Returns the value and true if
		// found.
		Get(key K) (V, bool)
		// Set stores a value under key, replacing any previous entry.
		Set(key K, value V)
		// Delete removes a stored entry by key.
		Delete(key K)
		// Clear removes all entries.
		Clear()
	}

	// StoreConfig holds configuration for a store instance.
	StoreConfig struct {
		// Options holds adapter-specific settings.
		Options map[string]any
		// MaxSize is the maximum number of entries the store can hold.
		// Adapters without capacity bounds ignore it.
		MaxSize int
	}

	storeConfigFile struct {
		Stores map[string]storeConfigJSON `json:"stores"`
	}

	storeConfigJSON struct {
		Options map[string]any `json:"options,omitempty"`
		MaxSize int            `json:"max_size"`
	}
)

// LoadStoreConfig reads a JSON configuration file and returns the
// StoreConfig for the named store entry.
func LoadStoreConfig(path, name string) (StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StoreConfig{}, fmt.Errorf("f6k: read store config: %w", err)
	}

	var cfg storeConfigFile

	if err = json.Unmarshal(data, &cfg); err != nil {
		return StoreConfig{}, fmt.Errorf("f6k: parse store config: %w", err)
	}

	raw, ok := cfg.Stores[name]
	if !ok {
		return StoreConfig{}, fmt.Errorf(
			"f6k: store %q not found in config",
			name,
		)
	}

	return StoreConfig{
		Options: raw.Options,
		MaxSize: raw.MaxSize,
	}, nil
}

// mapStore is the default unbounded in-memory [Store].
type mapStore[K comparable, V any] struct {
	data map[K]V
}

// NewMapStore creates an unbounded in-memory [Store] backed by a plain map.
// It carries no synchronisation; like the policies that use it, it expects a
// single caller.
//
//nolint:ireturn // constructor returns the Store contract by design
func NewMapStore[K comparable, V any]() Store[K, V] {
	return &mapStore[K, V]{data: make(map[K]V)}
}

//nolint:ireturn // generic type parameter V, not an interface
func (s *mapStore[K, V]) Get(key K) (V, bool) {
	v, ok := s.data[key]

	return v, ok
}

func (s *mapStore[K, V]) Set(key K, value V) {
	s.data[key] = value
}

func (s *mapStore[K, V]) Delete(key K) {
	delete(s.data, key)
}

func (s *mapStore[K, V]) Clear() {
	clear(s.data)
}
