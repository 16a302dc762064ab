package effect

import "context"

// Handler interprets an [Effect] and produces a [Result]. Implementations
// must honor the full Op vocabulary and must express failures through the
// Result vocabulary rather than raised errors. Consumers of descriptors are
// written against this contract alone, never a concrete handler, so
// handlers stay swappable at the call site.
type Handler interface {
	Handle(e Effect) Result
}

// HandlerFunc adapts a plain function to the [Handler] interface.
type HandlerFunc func(e Effect) Result

// Handle calls f(e).
func (f HandlerFunc) Handle(e Effect) Result { return f(e) }

// Run adapts a descriptor-plus-handler pair into a fallible function of the
// shape fallback policies wrap, returning the payload on StatusOK and the
// Result's error otherwise. The context parameter exists only to match the
// wrapped-function contract; interpretation is synchronous.
func Run(h Handler, e Effect) func(context.Context) (string, error) {
	return func(_ context.Context) (string, error) {
		res := h.Handle(e)
		if err := res.Err(); err != nil {
			return "", err
		}

		return res.Payload, nil
	}
}
