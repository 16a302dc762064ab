package otter

import (
	"testing"

	"github.com/byte4ever/f6k"
)

func newTestConfig() f6k.StoreConfig {
	return f6k.StoreConfig{
		MaxSize: 1000,
	}
}

// ---------------------------------------------------------------------------
// MustNew creates a valid store without panicking
// ---------------------------------------------------------------------------

func TestMustNewDoesNotPanic(t *testing.T) {
	store := MustNew[string, string](newTestConfig())
	if store == nil {
		t.Fatal("MustNew() returned nil")
	}
}

// ---------------------------------------------------------------------------
// Set + Get returns stored value
// ---------------------------------------------------------------------------

func TestSetGet(t *testing.T) {
	store := MustNew[string, string](newTestConfig())

	store.Set("hello", "world")

	got, ok := store.Get("hello")
	if !ok {
		t.Fatal("Get(hello) = _, false; want _, true")
	}

	if got != "world" {
		t.Fatalf("Get(hello) = %q, want %q", got, "world")
	}
}

// ---------------------------------------------------------------------------
// Struct keys are supported
// ---------------------------------------------------------------------------

type compositeKey struct {
	tenant string
	id     int
}

func TestStructKey(t *testing.T) {
	store := MustNew[compositeKey, string](newTestConfig())

	key := compositeKey{tenant: "acme", id: 7}
	store.Set(key, "record")

	got, ok := store.Get(key)
	if !ok {
		t.Fatal("Get(key) = _, false; want _, true")
	}

	if got != "record" {
		t.Fatalf("Get(key) = %q, want %q", got, "record")
	}
}

// ---------------------------------------------------------------------------
// Get on a missing key reports absence
// ---------------------------------------------------------------------------

func TestGetMissingKey(t *testing.T) {
	store := MustNew[string, int](newTestConfig())

	if _, ok := store.Get("absent"); ok {
		t.Fatal("Get(absent) = _, true; want _, false")
	}
}

// ---------------------------------------------------------------------------
// Delete removes the entry
// ---------------------------------------------------------------------------

func TestDelete(t *testing.T) {
	store := MustNew[string, string](newTestConfig())

	store.Set("key", "value")
	store.Delete("key")

	if _, ok := store.Get("key"); ok {
		t.Fatal("Get(key) after Delete = _, true; want _, false")
	}
}

// ---------------------------------------------------------------------------
// Clear empties the store
// ---------------------------------------------------------------------------

func TestClear(t *testing.T) {
	store := MustNew[string, string](newTestConfig())

	store.Set("a", "1")
	store.Set("b", "2")
	store.Clear()

	if _, ok := store.Get("a"); ok {
		t.Fatal("Get(a) after Clear = _, true; want _, false")
	}
	if _, ok := store.Get("b"); ok {
		t.Fatal("Get(b) after Clear = _, true; want _, false")
	}
}
