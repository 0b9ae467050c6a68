// Package wire implements the canonical binary encoding used by the
// build protocol and the archive format: unsigned integers as 8 bytes
// little-endian, byte strings length-prefixed and zero-padded to 8-byte
// alignment, and string collections as a count followed by encoded
// strings. All functions operate against stream.Sink and stream.Source.
package wire

import (
	"errors"
	"fmt"
)

// ErrorKind classifies codec decode errors.
type ErrorKind int

const (
	// ErrorStructural indicates the byte stream does not conform to the
	// wire grammar: nonzero padding, or an integer too wide for the
	// 32-bit decode entry point. The stream is desynchronized and
	// unusable beyond this point.
	ErrorStructural ErrorKind = iota
	// ErrorCapacity indicates a decoded string length exceeding the
	// caller-supplied maximum. Raised before any allocation proportional
	// to the untrusted length.
	ErrorCapacity
)

// Error represents a codec decode error.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wire: %s: %v", e.Msg, e.Err)
	}
	return "wire: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStructural returns true if the error is a wire-grammar violation.
func IsStructural(err error) bool {
	var we *Error
	return errors.As(err, &we) && we.Kind == ErrorStructural
}

// IsCapacity returns true if the error is a rejected over-limit length.
func IsCapacity(err error) bool {
	var we *Error
	return errors.As(err, &we) && we.Kind == ErrorCapacity
}
