package stream

// BufferedSource serves reads from an internal window over bytes fetched
// from a RawReader backend. Two cursors track the window: posIn is the
// end of valid data and posOut the next byte to yield, with
// posOut <= posIn <= cap. The backend is consulted only when the window
// is empty, never to top up a partially drained window, so previously
// queued bytes always come out ahead of newly fetched ones.
type BufferedSource struct {
	backend RawReader
	size    int
	buf     []byte
	posIn   int
	posOut  int
}

// NewBufferedSource creates a source buffering reads from backend. A size
// of zero or less selects DefaultBufferSize.
func NewBufferedSource(backend RawReader, size int) *BufferedSource {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BufferedSource{backend: backend, size: size}
}

// Read implements Source, returning up to len(p) bytes. When the window
// drains exactly, both cursors reset to zero.
func (s *BufferedSource) Read(p []byte) (int, error) {
	if s.buf == nil {
		s.buf = make([]byte, s.size)
	}
	if s.posIn == 0 {
		n, err := s.backend.ReadRaw(s.buf)
		if err != nil {
			return 0, err
		}
		s.posIn = n
	}
	n := copy(p, s.buf[s.posOut:s.posIn])
	s.posOut += n
	if s.posIn == s.posOut {
		s.posIn, s.posOut = 0, 0
	}
	return n, nil
}

// HasData reports whether buffered bytes can be served without consulting
// the backend. Callers use it to distinguish "would need to block" from
// "definitely exhausted".
func (s *BufferedSource) HasData() bool {
	return s.posOut < s.posIn
}

// Capacity returns the configured buffer capacity.
func (s *BufferedSource) Capacity() int {
	return s.size
}

// Verify BufferedSource implements Source.
var _ Source = (*BufferedSource)(nil)
