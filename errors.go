package f6k

// ---------------------------------------------------------------------------
// Error classification wrappers
// ---------------------------------------------------------------------------.

type (
	// FallbackError identifies errors produced by the fallback layer itself,
	// as opposed to errors from the wrapped function.
	//nolint:iface // exported for use in tests and consumer error
	// classification.
	FallbackError interface {
		error
		// IsFallback reports whether this error originates from the
		// fallback layer.
		IsFallback() bool
	}

	// fallbackError is the concrete type backing all sentinel errors.
	fallbackError string
)

// Sentinel policy-exhaustion errors. [Engine.Execute] surfaces only these
// three; the wrapped function's original error is deliberately discarded at
// that boundary. Callers that need the original cause use
// [Engine.ExecuteWithFallback], [DoFallbackFunc], [TryDo], or
// [CacheFallback.Get].
var (
	// ErrNoFallbackValue is returned when the default-value strategy is
	// selected but no default has been configured.
	ErrNoFallbackValue error = fallbackError("no fallback value configured")
	// ErrOperationFailed is returned by the throw-error strategy when the
	// primary operation fails.
	ErrOperationFailed error = fallbackError("operation failed")
	// ErrUnsupportedStrategy is returned when Execute is called on a policy
	// whose strategy is not natively handled by that entry point.
	ErrUnsupportedStrategy error = fallbackError("unsupported fallback strategy")
)

func (e fallbackError) Error() string { return string(e) }

// IsFallback reports whether the error is a fallback infrastructure error.
func (fallbackError) IsFallback() bool { return true }
