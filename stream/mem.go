package stream

// MemSink appends every pushed run to a growable byte sequence shared
// with its creator. Both hold the same *[]byte; the sequence lives as
// long as the longest holder. Push is unbuffered, so Flush has nothing
// to do.
type MemSink struct {
	Bytes   *[]byte
	warning *TransferWarning
}

// NewMemSink creates a sink with a fresh output sequence, sharing the
// process-wide MemTransferWarning cell.
func NewMemSink() *MemSink {
	var b []byte
	return NewMemSinkBuffer(&b)
}

// NewMemSinkBuffer creates a sink appending to a caller-owned sequence.
func NewMemSinkBuffer(buf *[]byte) *MemSink {
	return &MemSink{Bytes: buf, warning: MemTransferWarning}
}

// NewMemSinkWarn creates a sink with an explicit warning cell. Pass nil
// to disable the oversized-payload warning.
func NewMemSinkWarn(buf *[]byte, warning *TransferWarning) *MemSink {
	return &MemSink{Bytes: buf, warning: warning}
}

// Push implements Sink. The oversized-payload warning is keyed off the
// sequence's size before the append, matching the descriptor sink's
// count-before-attempt rule.
func (s *MemSink) Push(p []byte) error {
	s.warning.Note(uint64(len(*s.Bytes)))
	*s.Bytes = append(*s.Bytes, p...)
	return nil
}

// Flush implements Sink. Memory sinks never hold bytes back.
func (s *MemSink) Flush() error {
	return nil
}

// MemSource serves bytes from a fixed sequence through a cursor. A read
// at the end of the sequence raises ErrEndOfStream; exhaustion is
// detected strictly at the boundary, with no retry semantics.
type MemSource struct {
	data []byte
	pos  int
}

// NewMemSource creates a source over data. The sequence is not copied;
// the caller must not mutate it while the source is in use.
func NewMemSource(data []byte) *MemSource {
	return &MemSource{data: data}
}

// Read implements Source, copying min(len(p), remaining) bytes.
func (s *MemSource) Read(p []byte) (int, error) {
	if s.pos == len(s.data) {
		return 0, ErrEndOfStream
	}
	n := copy(p, s.data[s.pos:])
	s.pos += n
	return n, nil
}

// HasData reports whether the cursor has not yet reached the end.
func (s *MemSource) HasData() bool {
	return s.pos < len(s.data)
}

var (
	_ Sink   = (*MemSink)(nil)
	_ Source = (*MemSource)(nil)
)
