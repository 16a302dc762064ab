package f6k

import "context"

// Pattern: Fallback — catches a final error and either substitutes a static
// value, delegates to a fallback function, or reports absence, providing a
// last line of defence. These free functions are stateless; use [Engine] when
// aggregated statistics are needed.

// DoFallback executes fn. On error, returns the fallback value instead.
//
// design.
//
//nolint:ireturn,unparam // generic type parameter T; error is always nil by
func DoFallback[T any](
	ctx context.Context,
	fn func(context.Context) (T, error),
	fallbackVal T,
	hooks *Hooks,
) (T, error) {
	result, err := fn(ctx)
	if err != nil {
		hooks.emitFallbackUsed(err)
		return fallbackVal, nil
	}

	return result, nil
}

// DoFallbackFunc executes fn. On error, calls fallbackFn with the error and
// returns its result. This is the only fallback path where the fallback's
// own failure is allowed to propagate.
//
//nolint:ireturn // generic type parameter T, not an interface
func DoFallbackFunc[T any](
	ctx context.Context,
	fn func(context.Context) (T, error),
	fallbackFn func(error) (T, error),
	hooks *Hooks,
) (T, error) {
	result, err := fn(ctx)
	if err != nil {
		hooks.emitFallbackUsed(err)

		//nolint:wrapcheck // fallback function's error returned as-is
		return fallbackFn(
			err,
		)
	}

	return result, nil
}

// TryDo executes fn and reports whether it produced a value. On error the
// zero value of T and false are returned; the error itself is discarded.
//
//nolint:ireturn // generic type parameter T, not an interface
func TryDo[T any](
	ctx context.Context,
	fn func(context.Context) (T, error),
	hooks *Hooks,
) (T, bool) {
	result, err := fn(ctx)
	if err != nil {
		hooks.emitFallbackUsed(err)

		var zero T

		return zero, false
	}

	return result, true
}
