package effect

// MockHandler is a [Handler] that ignores its input and always returns a
// successful [Result] with a canned payload. It exists for tests that must
// not touch real storage; swap it in wherever an [FSHandler] would go.
type MockHandler struct {
	// Payload is returned in every Result.
	Payload string
}

// Handle returns a success carrying the canned payload, whatever e says.
func (m MockHandler) Handle(_ Effect) Result {
	return OK(m.Payload)
}
