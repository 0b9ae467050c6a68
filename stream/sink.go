package stream

// BufferedSink accumulates pushed byte runs in a fixed-capacity buffer
// and forwards them to a RawWriter backend in batches. The buffer is
// allocated on first use so short-lived unused sinks stay cheap.
type BufferedSink struct {
	backend RawWriter
	size    int
	buf     []byte
	pos     int
}

// NewBufferedSink creates a sink buffering writes to backend. A size of
// zero or less selects DefaultBufferSize.
func NewBufferedSink(backend RawWriter, size int) *BufferedSink {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BufferedSink{backend: backend, size: size}
}

// Push implements Sink.
//
// A run that would fill the buffer on its own is forwarded to the backend
// directly after flushing any buffered bytes, avoiding the extra copy for
// large transfers. Smaller runs are copied in, and the buffer is flushed
// whenever it becomes exactly full.
func (s *BufferedSink) Push(p []byte) error {
	if s.buf == nil {
		s.buf = make([]byte, s.size)
	}
	for len(p) > 0 {
		if s.pos+len(p) >= s.size {
			if err := s.Flush(); err != nil {
				return err
			}
			return s.backend.WriteRaw(p)
		}
		n := copy(s.buf[s.pos:], p)
		s.pos += n
		p = p[n:]
		if s.pos == s.size {
			if err := s.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush implements Sink. The cursor is reset before the backend write so
// a failed write is not replayed by a later flush at teardown.
func (s *BufferedSink) Flush() error {
	if s.pos == 0 {
		return nil
	}
	n := s.pos
	s.pos = 0
	return s.backend.WriteRaw(s.buf[:n])
}

// Buffered returns the number of bytes waiting for the next flush.
func (s *BufferedSink) Buffered() int {
	return s.pos
}

// Capacity returns the configured buffer capacity.
func (s *BufferedSink) Capacity() int {
	return s.size
}

// Verify BufferedSink implements Sink.
var _ Sink = (*BufferedSink)(nil)
