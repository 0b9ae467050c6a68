// Package stream provides the buffered byte-stream layer beneath the
// sluice wire protocol and archive format.
//
// A Sink is a push-oriented byte consumer and a Source is a pull-oriented
// byte producer. Both buffer internally so that many small transfers cost
// a single backend call. Concrete transports are descriptor-backed
// (FdSink, FdSource) and memory-backed (MemSink, MemSource).
//
// Instances are not safe for concurrent use; each is owned by exactly one
// logical stream of calls.
package stream

// DefaultBufferSize is the internal buffer capacity used when a
// constructor is not given an explicit size.
const DefaultBufferSize = 32 * 1024

// Sink is a push-oriented byte-consuming endpoint.
//
// Push accepts a run of any length; once it returns, every byte has been
// copied into the internal buffer or handed to the backend. Flush forces
// any buffered bytes out to the backend and is a no-op when the buffer is
// empty. A sink must be flushed before it is discarded.
type Sink interface {
	Push(p []byte) error
	Flush() error
}

// Source is a pull-oriented byte-producing endpoint.
//
// Read copies up to len(p) bytes into p and reports how many. It never
// returns 0 bytes without an error. Use Pull for exact-length reads.
type Source interface {
	Read(p []byte) (int, error)
}

// RawWriter is the unbuffered backend write primitive behind a
// BufferedSink. WriteRaw must transfer all of p or report why it could
// not.
type RawWriter interface {
	WriteRaw(p []byte) error
}

// RawReader is the unbuffered backend read primitive behind a
// BufferedSource. ReadRaw transfers between 1 and len(p) bytes, or
// returns an error; a zero-byte success is not a valid result.
type RawReader interface {
	ReadRaw(p []byte) (int, error)
}

// Pull fills p exactly by issuing repeated reads against src. Callers
// never observe short reads through this entry point.
func Pull(src Source, p []byte) error {
	for len(p) > 0 {
		n, err := src.Read(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
