// Package metrics provides transfer metrics collection for sluice
// streams. The Collector accumulates counters for one logical stream; it
// is a leaf package with no internal dependencies. Transports do not
// record metrics themselves — wrap them with stream.InstrumentedSink /
// stream.InstrumentedSource, or increment decode counters from codec
// call sites.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of all transfer counters.
// Safe to read concurrently after creation.
type Snapshot struct {
	// Push side
	BytesPushed int64
	Flushes     int64

	// Pull side
	BytesRead    int64
	EndOfStreams int64

	// Codec
	StructuralErrors int64
	CapacityErrors   int64

	// Dimensions (informational, set at construction)
	Transport string
	StreamID  string
}

// Collector accumulates transfer counters for a single logical stream.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver
// safe so uninstrumented call sites cost nothing to write.
type Collector struct {
	mu sync.Mutex

	bytesPushed int64
	flushes     int64

	bytesRead    int64
	endOfStreams int64

	structuralErrors int64
	capacityErrors   int64

	transport string
	streamID  string
}

// NewCollector creates a Collector with dimension labels. Transport names
// the concrete backend kind ("fd", "mem"); streamID is optional.
func NewCollector(transport, streamID string) *Collector {
	return &Collector{transport: transport, streamID: streamID}
}

// AddBytesPushed records bytes accepted by the push side.
func (c *Collector) AddBytesPushed(n int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.bytesPushed += int64(n)
	c.mu.Unlock()
}

// IncFlush records a completed flush.
func (c *Collector) IncFlush() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.flushes++
	c.mu.Unlock()
}

// AddBytesRead records bytes yielded by the pull side.
func (c *Collector) AddBytesRead(n int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.bytesRead += int64(n)
	c.mu.Unlock()
}

// IncEndOfStream records an end-of-stream condition.
func (c *Collector) IncEndOfStream() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.endOfStreams++
	c.mu.Unlock()
}

// IncStructuralError records a wire-grammar violation during decode.
func (c *Collector) IncStructuralError() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.structuralErrors++
	c.mu.Unlock()
}

// IncCapacityError records a rejected over-limit string length.
func (c *Collector) IncCapacityError() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.capacityErrors++
	c.mu.Unlock()
}

// Snapshot returns an immutable point-in-time view of all counters. The
// Collector can continue to be mutated independently.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		BytesPushed:      c.bytesPushed,
		Flushes:          c.flushes,
		BytesRead:        c.bytesRead,
		EndOfStreams:     c.endOfStreams,
		StructuralErrors: c.structuralErrors,
		CapacityErrors:   c.capacityErrors,
		Transport:        c.transport,
		StreamID:         c.streamID,
	}
}
