package stream

import (
	"errors"

	"github.com/justapithecus/sluice/metrics"
)

// InstrumentedSink wraps a Sink and records push metrics on a collector.
// Each successful Push adds its byte count; each successful Flush
// increments the flush counter.
type InstrumentedSink struct {
	inner     Sink
	collector *metrics.Collector
}

// NewInstrumentedSink wraps a sink with metrics instrumentation.
func NewInstrumentedSink(inner Sink, collector *metrics.Collector) *InstrumentedSink {
	return &InstrumentedSink{inner: inner, collector: collector}
}

// Push delegates to the inner sink and records accepted bytes.
func (s *InstrumentedSink) Push(p []byte) error {
	err := s.inner.Push(p)
	if err == nil {
		s.collector.AddBytesPushed(len(p))
	}
	return err
}

// Flush delegates to the inner sink and records the flush.
func (s *InstrumentedSink) Flush() error {
	err := s.inner.Flush()
	if err == nil {
		s.collector.IncFlush()
	}
	return err
}

// InstrumentedSource wraps a Source and records pull metrics on a
// collector, including end-of-stream occurrences.
type InstrumentedSource struct {
	inner     Source
	collector *metrics.Collector
}

// NewInstrumentedSource wraps a source with metrics instrumentation.
func NewInstrumentedSource(inner Source, collector *metrics.Collector) *InstrumentedSource {
	return &InstrumentedSource{inner: inner, collector: collector}
}

// Read delegates to the inner source and records yielded bytes.
func (s *InstrumentedSource) Read(p []byte) (int, error) {
	n, err := s.inner.Read(p)
	if n > 0 {
		s.collector.AddBytesRead(n)
	}
	if errors.Is(err, ErrEndOfStream) {
		s.collector.IncEndOfStream()
	}
	return n, err
}

var (
	_ Sink   = (*InstrumentedSink)(nil)
	_ Source = (*InstrumentedSource)(nil)
)
