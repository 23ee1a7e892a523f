package log

// Logger receives protocol events. Implementations must be safe for
// concurrent use and should return quickly.
type Logger interface {
	Log(event Event)
}

// NoopLogger discards every event. The zero value is ready to use.
type NoopLogger struct{}

// Log does nothing.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}

// OrNoop returns l, or NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}
