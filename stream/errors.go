package stream

import (
	"errors"
	"fmt"
)

// ErrEndOfStream reports that the backend had no more data when more was
// expected. Once raised the stream is unusable and must be discarded.
var ErrEndOfStream = errors.New("stream: unexpected end of stream")

// TransportError wraps an unrecoverable backend I/O failure on a
// descriptor transport. It always marks the transport unhealthy.
type TransportError struct {
	Op  string // "read" or "write"
	Fd  int
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("stream: %s fd %d: %v", e.Op, e.Fd, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport returns true if the error is a descriptor transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
