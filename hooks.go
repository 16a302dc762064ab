package f6k

// Hooks holds optional callback functions for fallback lifecycle events.
// All fields are nil by default; callers set only the hooks they care about.
// Once constructed, a Hooks value must not be mutated — emit methods read the
// function fields without synchronisation, which is safe as long as the
// struct is read-only after initialisation.
//
// Pattern: Observer — decouples fallback event emission from consumers
// (logging, metrics, alerting) without policies knowing about observers.
type Hooks struct {
	// OnFallbackUsed fires when a primary operation fails and a fallback
	// path is attempted, with the primary's error.
	OnFallbackUsed func(err error)
	// OnDefaultServed fires when the default-value strategy recovers a
	// failed call.
	OnDefaultServed func()
	// OnPolicyExhausted fires when neither the primary nor the fallback
	// path produced a value, with the policy-exhaustion error.
	OnPolicyExhausted func(err error)
	// OnCacheRefreshed fires when a successful fetch upserts a cache entry.
	OnCacheRefreshed func()
	// OnStaleServed fires when a cached value is served after a failed
	// fetch.
	OnStaleServed func()
}

func (h *Hooks) emitFallbackUsed(err error) {
	if h.OnFallbackUsed != nil {
		h.OnFallbackUsed(err)
	}
}

func (h *Hooks) emitDefaultServed() {
	if h.OnDefaultServed != nil {
		h.OnDefaultServed()
	}
}

func (h *Hooks) emitPolicyExhausted(err error) {
	if h.OnPolicyExhausted != nil {
		h.OnPolicyExhausted(err)
	}
}

func (h *Hooks) emitCacheRefreshed() {
	if h.OnCacheRefreshed != nil {
		h.OnCacheRefreshed()
	}
}

func (h *Hooks) emitStaleServed() {
	if h.OnStaleServed != nil {
		h.OnStaleServed()
	}
}
