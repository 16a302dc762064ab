package effect

import "fmt"

// Status enumerates the closed set of outcome kinds a [Handler] may produce.
// This vocabulary is the only thing a consumer may branch on.
type Status int

const (
	// StatusOK is a successful outcome carrying a payload.
	StatusOK Status = iota
	// StatusNotFound means the target of the operation does not exist.
	StatusNotFound
	// StatusPermissionDenied means the operation was refused by the OS.
	StatusPermissionDenied
	// StatusIOError is any other I/O failure, carrying a diagnostic.
	StatusIOError
)

// String returns the status as a human-readable string.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusPermissionDenied:
		return "permission_denied"
	case StatusIOError:
		return "io_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of interpreting an [Effect]. Failures are data, not
// raised errors; callers pattern-match on Status.
type Result struct {
	// Status is the outcome kind.
	Status Status
	// Payload carries the successful operation's textual result: file
	// contents for reads, newline-joined names for directory listings,
	// "true"/"false" for existence checks, empty otherwise.
	Payload string
	// Diagnostic describes the failure for StatusIOError.
	Diagnostic string
}

// OK returns a successful Result with the given payload.
func OK(payload string) Result {
	return Result{Status: StatusOK, Payload: payload}
}

// NotFound returns a Result reporting a missing target.
func NotFound() Result {
	return Result{Status: StatusNotFound}
}

// PermissionDenied returns a Result reporting an OS refusal.
func PermissionDenied() Result {
	return Result{Status: StatusPermissionDenied}
}

// IOError returns a Result carrying a diagnostic string.
func IOError(diagnostic string) Result {
	return Result{Status: StatusIOError, Diagnostic: diagnostic}
}

// Err converts a non-OK Result into an error for call sites that bridge the
// Result vocabulary into Go's error handling (see [Run]). It returns nil for
// StatusOK.
func (r Result) Err() error {
	switch r.Status {
	case StatusOK:
		return nil
	case StatusIOError:
		return fmt.Errorf("effect: %s: %s", r.Status, r.Diagnostic)
	default:
		return fmt.Errorf("effect: %s", r.Status)
	}
}
