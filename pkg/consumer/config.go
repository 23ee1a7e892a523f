package consumer

import (
	"log/slog"
	"time"

	"github.com/ember-protocol/ember-go/pkg/log"
)

// DefaultRequestTimeout bounds the blocking helpers when the caller's
// context has no deadline.
const DefaultRequestTimeout = 10 * time.Second

// Config configures a Consumer.
type Config struct {
	// Logger receives operational debug logs. Nil disables them.
	Logger *slog.Logger

	// ProtocolLogger captures every message and merge. Nil disables capture.
	ProtocolLogger log.Logger

	// ConnectionID tags captured events. A random UUID is used when empty.
	ConnectionID string

	// RequestTimeout bounds ResolvePathContext and GetDirectoryContext.
	// Zero means no timeout beyond the caller's context.
	RequestTimeout time.Duration
}

// DefaultConfig returns the default consumer configuration.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: DefaultRequestTimeout,
	}
}
