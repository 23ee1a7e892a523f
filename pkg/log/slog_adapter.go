package log

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// SlogAdapter prints protocol events as debug records of an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("conn_id", event.ConnectionID),
		slog.String("role", event.LocalRole.String()),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Peer != "" {
		attrs = append(attrs, slog.String("peer", event.Peer))
	}

	switch {
	case event.Message != nil:
		m := event.Message
		attrs = append(attrs,
			slog.String("msg_type", m.Type.String()),
			slog.Int("size", m.Size),
			slog.Int("elements", m.Elements),
		)
		if len(m.Path) > 0 {
			attrs = append(attrs, slog.String("path", FormatPath(m.Path)))
		}
		if m.Command != nil {
			attrs = append(attrs, slog.Int("command", int(*m.Command)))
		}
	case event.Merge != nil:
		attrs = append(attrs,
			slog.Int("elements", event.Merge.Elements),
			slog.Int("callbacks", event.Merge.Callbacks),
			slog.Duration("duration", event.Merge.Duration),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "ember", attrs...)
}

// FormatPath renders element numbers in dotted form, e.g. "1.2.3".
func FormatPath(path []int32) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	return strings.Join(parts, ".")
}

var _ Logger = (*SlogAdapter)(nil)
