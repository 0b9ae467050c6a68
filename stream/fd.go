package stream

import (
	"golang.org/x/sys/unix"

	"github.com/justapithecus/sluice/log"
)

// InterruptCheck is a cooperative cancellation hook polled at the top of
// every unbuffered descriptor read, including between EINTR retries. A
// non-nil return aborts the current operation. There is no mid-syscall
// cancellation.
type InterruptCheck func() error

// Syscall indirection so tests can script EINTR and short transfers.
var (
	sysRead  = unix.Read
	sysWrite = unix.Write
)

// FdSink is a descriptor-backed Sink.
//
// Unrecoverable write errors are swallowed into a sticky health flag
// rather than returned: Push and Flush keep the caller's control flow and
// callers poll Healthy afterwards. Reads deliberately do not share this
// behavior; the asymmetry is preserved for wire compatibility with the
// rest of the build system.
type FdSink struct {
	*BufferedSink
	fd      int
	warning *TransferWarning
	logger  *log.Logger
	written uint64
	ok      bool
}

// NewFdSink creates a sink writing to fd, sharing the process-wide
// FdTransferWarning cell.
func NewFdSink(fd int) *FdSink {
	return NewFdSinkSized(fd, DefaultBufferSize, FdTransferWarning)
}

// NewFdSinkWarn creates a sink writing to fd with an explicit warning
// cell. Pass nil to disable the large-transfer warning.
func NewFdSinkWarn(fd int, warning *TransferWarning) *FdSink {
	return NewFdSinkSized(fd, DefaultBufferSize, warning)
}

// NewFdSinkSized creates a sink writing to fd with an explicit buffer
// capacity and warning cell.
func NewFdSinkSized(fd, size int, warning *TransferWarning) *FdSink {
	s := &FdSink{
		fd:      fd,
		warning: warning,
		logger:  log.NewLogger("stream.fd"),
		ok:      true,
	}
	s.BufferedSink = NewBufferedSink(s, size)
	return s
}

// WriteRaw implements RawWriter. The byte counter is incremented before
// the attempt so a short failed write still counts toward the warning
// threshold.
func (s *FdSink) WriteRaw(p []byte) error {
	s.written += uint64(len(p))
	s.warning.Note(s.written)
	if err := writeFull(s.fd, p); err != nil {
		s.ok = false
		s.logger.Debug("descriptor write failed", map[string]any{
			"fd":    s.fd,
			"error": err.Error(),
		})
	}
	return nil
}

// Healthy reports whether every write so far reached the descriptor.
func (s *FdSink) Healthy() bool {
	return s.ok
}

// BytesWritten returns the cumulative count handed to the descriptor,
// including bytes of failed attempts. Diagnostic only.
func (s *FdSink) BytesWritten() uint64 {
	return s.written
}

// Close flushes pending bytes. Failure is reported only through the
// health flag, like every other write on this sink.
func (s *FdSink) Close() error {
	return s.Flush()
}

// writeFull writes all of p to fd, retrying partial writes and EINTR.
func writeFull(fd int, p []byte) error {
	for len(p) > 0 {
		n, err := sysWrite(fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return &TransportError{Op: "write", Fd: fd, Err: err}
		}
		p = p[n:]
	}
	return nil
}

// FdSource is a descriptor-backed Source.
//
// Unlike FdSink, read failures propagate to the caller as well as
// downgrading the health flag. A zero-byte read from the descriptor is
// never a valid empty result here; it raises ErrEndOfStream.
type FdSource struct {
	*BufferedSource
	fd        int
	check     InterruptCheck
	readTotal uint64
	ok        bool
}

// NewFdSource creates a source reading from fd with no interruption hook.
func NewFdSource(fd int) *FdSource {
	return NewFdSourceSized(fd, DefaultBufferSize, nil)
}

// NewFdSourceInterrupt creates a source reading from fd, polling check
// before every unbuffered read.
func NewFdSourceInterrupt(fd int, check InterruptCheck) *FdSource {
	return NewFdSourceSized(fd, DefaultBufferSize, check)
}

// NewFdSourceSized creates a source reading from fd with an explicit
// buffer capacity and interruption hook.
func NewFdSourceSized(fd, size int, check InterruptCheck) *FdSource {
	s := &FdSource{fd: fd, check: check, ok: true}
	s.BufferedSource = NewBufferedSource(s, size)
	return s
}

// ReadRaw implements RawReader, retrying EINTR transparently.
func (s *FdSource) ReadRaw(p []byte) (int, error) {
	for {
		if s.check != nil {
			if err := s.check(); err != nil {
				return 0, err
			}
		}
		n, err := sysRead(s.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			s.ok = false
			return 0, &TransportError{Op: "read", Fd: s.fd, Err: err}
		}
		if n == 0 {
			s.ok = false
			return 0, ErrEndOfStream
		}
		s.readTotal += uint64(n)
		return n, nil
	}
}

// Healthy reports whether the source is still usable: it goes false on
// the first unrecoverable error or end of stream.
func (s *FdSource) Healthy() bool {
	return s.ok
}

// BytesRead returns the cumulative count fetched from the descriptor.
// Diagnostic only.
func (s *FdSource) BytesRead() uint64 {
	return s.readTotal
}

var (
	_ Sink   = (*FdSink)(nil)
	_ Source = (*FdSource)(nil)
)
