// Package monoid provides algebraic reduction of value sequences via an
// identity element and an associative combining function.
//
// A lawful instance satisfies Combine(Empty(), x) == x,
// Combine(x, Empty()) == x, and associativity of Combine. The package does
// not enforce the laws; stock instances satisfy them, custom instances are
// the caller's responsibility.
package monoid

// Monoid pairs an identity element with an associative combining function
// over T.
type Monoid[T any] struct {
	// Empty produces the identity element.
	Empty func() T
	// Combine merges two values. It must be associative and must treat
	// Empty() as identity on both sides.
	Combine func(a, b T) T
}

// New creates a [Monoid] from an identity constructor and a combining
// function.
func New[T any](empty func() T, combine func(a, b T) T) Monoid[T] {
	return Monoid[T]{Empty: empty, Combine: combine}
}

// Fold reduces values left-to-right, starting from the identity element.
// Folding an empty sequence yields the identity.
//
//nolint:ireturn // generic type parameter T, not an interface
func (m Monoid[T]) Fold(values []T) T {
	acc := m.Empty()
	for _, v := range values {
		acc = m.Combine(acc, v)
	}

	return acc
}

// Number constrains the numeric types usable with [Sum] and [Product].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the additive monoid over N (identity 0).
func Sum[N Number]() Monoid[N] {
	return New(
		func() N { return 0 },
		func(a, b N) N { return a + b },
	)
}

// Product returns the multiplicative monoid over N (identity 1).
func Product[N Number]() Monoid[N] {
	return New(
		func() N { return 1 },
		func(a, b N) N { return a * b },
	)
}

// All returns the conjunction monoid over bool (identity true).
func All() Monoid[bool] {
	return New(
		func() bool { return true },
		func(a, b bool) bool { return a && b },
	)
}

// Any returns the disjunction monoid over bool (identity false).
func Any() Monoid[bool] {
	return New(
		func() bool { return false },
		func(a, b bool) bool { return a || b },
	)
}

// Concat returns the string concatenation monoid (identity "").
func Concat() Monoid[string] {
	return New(
		func() string { return "" },
		func(a, b string) string { return a + b },
	)
}

// Append returns the slice concatenation monoid over []T (identity nil).
func Append[T any]() Monoid[[]T] {
	return New(
		func() []T { return nil },
		func(a, b []T) []T { return append(a, b...) },
	)
}
