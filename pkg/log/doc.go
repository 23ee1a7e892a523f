// Package log captures Ember+ protocol events.
//
// Protocol capture is separate from operational logging (slog): it records
// every encoded message a consumer or provider sends or receives, and every
// merge into the cached tree, as machine-readable events.
//
// # Basic Usage
//
//	// print events while developing
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// keep a capture file
//	fl, err := log.NewFileLogger("session.elog")
//	cfg.ProtocolLogger = log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # Events
//
//   - Codec layer: encoded Glow messages (MessageEvent), with the target path
//     and command of requests
//   - Tree layer: merges into the local cache (MergeEvent)
//   - Errors at either layer (ErrorEventData)
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events, one after another, with
// the .elog extension. Reader iterates them with an optional Filter.
package log
