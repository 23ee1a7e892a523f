package ber

import (
	"errors"
	"fmt"
)

// ErrMalformed reports truncated or invalid TLV framing or primitive content.
var ErrMalformed = errors.New("malformed BER encoding")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
