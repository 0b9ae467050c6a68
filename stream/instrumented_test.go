package stream

import (
	"errors"
	"testing"

	"github.com/justapithecus/sluice/metrics"
)

func TestInstrumentedSink_RecordsPushesAndFlushes(t *testing.T) {
	var out []byte
	collector := metrics.NewCollector("mem", "t")
	sink := NewInstrumentedSink(NewMemSinkWarn(&out, nil), collector)

	if err := sink.Push([]byte("abcde")); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	snap := collector.Snapshot()
	if snap.BytesPushed != 5 {
		t.Errorf("BytesPushed = %d, want 5", snap.BytesPushed)
	}
	if snap.Flushes != 1 {
		t.Errorf("Flushes = %d, want 1", snap.Flushes)
	}
}

func TestInstrumentedSource_RecordsReadsAndEndOfStream(t *testing.T) {
	collector := metrics.NewCollector("mem", "t")
	src := NewInstrumentedSource(NewMemSource([]byte("abc")), collector)

	if err := Pull(src, make([]byte, 3)); err != nil {
		t.Fatalf("Pull: %v", err)
	}
	if _, err := src.Read(make([]byte, 1)); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("Read = %v, want ErrEndOfStream", err)
	}

	snap := collector.Snapshot()
	if snap.BytesRead != 3 {
		t.Errorf("BytesRead = %d, want 3", snap.BytesRead)
	}
	if snap.EndOfStreams != 1 {
		t.Errorf("EndOfStreams = %d, want 1", snap.EndOfStreams)
	}
}
