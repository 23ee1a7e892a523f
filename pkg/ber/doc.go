// Package ber implements the BER primitive layer used by the Ember+ codec.
//
// Ember+ messages are nested TLV structures. Every field of an element is
// carried in an explicitly tagged constructed context wrapper which in turn
// holds a universal primitive (INTEGER, REAL, UTF8String, BOOLEAN,
// OCTET STRING or NULL).
//
// # Reading
//
// A Reader is a cursor over a byte slice. ReadSequence and GetSequence
// consume one TLV and return a new Reader scoped to its contents, so nested
// structures are decoded by descending into child readers:
//
//	env, err := r.GetSequence(ber.Application(0))
//	for !env.Empty() {
//	    tag, field, err := env.ReadSequence()
//	    ...
//	}
//
// # Writing
//
// A Writer builds definite-length encodings. Sequence opens a scoped
// constructed TLV whose length is patched when the continuation returns.
//
// # Limitations
//
// The Reader accepts DER-style framing only: lengths must use the definite,
// minimal form and tag numbers must be below 31. Indefinite-length
// containers (0x80 length octet) and non-minimal long-form lengths, both
// legal BER, are reported as ErrMalformed. Providers that emit them, as some
// hardware implementations do for large trees, are not supported.
//
// After reading the single value of a field, decoders call End to reject
// leftover bytes inside the field.
package ber
