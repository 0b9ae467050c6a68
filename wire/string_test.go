package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justapithecus/sluice/stream"
)

func TestString_RoundTripAllAlignments(t *testing.T) {
	for n := 0; n <= 17; n++ {
		payload := bytes.Repeat([]byte{'x'}, n)
		raw := encode(t, func(dst stream.Sink) error { return WriteBytes(dst, payload) })

		require.Len(t, raw, IntSize+n+Padding(n), "encoded length for payload of %d", n)

		got, err := ReadBytes(stream.NewMemSource(raw))
		require.NoError(t, err)
		require.Equal(t, payload, got)
	}
}

func TestString_EmptyEncodesAsBareLengthField(t *testing.T) {
	raw := encode(t, func(dst stream.Sink) error { return WriteString(dst, "") })
	require.Equal(t, make([]byte, 8), raw, "empty string is exactly the 8 zero length bytes")
}

func TestString_PaddingOmittedWhenAligned(t *testing.T) {
	raw := encode(t, func(dst stream.Sink) error { return WriteString(dst, "12345678") })
	require.Len(t, raw, 16)
}

func TestString_PaddingBytesAreZero(t *testing.T) {
	raw := encode(t, func(dst stream.Sink) error { return WriteString(dst, "abc") })
	require.Len(t, raw, 16)
	for i := 11; i < 16; i++ {
		require.Zero(t, raw[i], "padding byte %d", i)
	}
}

func TestString_NonzeroPaddingIsStructuralViolation(t *testing.T) {
	raw := encode(t, func(dst stream.Sink) error { return WriteString(dst, "abc") })
	raw[len(raw)-1] = 0xFF

	_, err := ReadString(stream.NewMemSource(raw))
	require.Error(t, err)
	require.True(t, IsStructural(err), "want structural violation, got %v", err)
}

func TestStringMax_CapacityViolationBeforePayloadConsumed(t *testing.T) {
	payload := "abcdefghi" // 9 bytes
	raw := encode(t, func(dst stream.Sink) error { return WriteString(dst, payload) })

	src := stream.NewMemSource(raw)
	_, err := ReadBytesMax(src, len(payload)-1)
	require.Error(t, err)
	require.True(t, IsCapacity(err), "want capacity violation, got %v", err)

	// Only the length field was consumed; the payload is still queued.
	next := make([]byte, 1)
	require.NoError(t, stream.Pull(src, next))
	require.Equal(t, byte('a'), next[0])
}

func TestStringMax_AcceptsExactLimit(t *testing.T) {
	raw := encode(t, func(dst stream.Sink) error { return WriteString(dst, "abcdefghi") })
	got, err := ReadStringMax(stream.NewMemSource(raw), 9)
	require.NoError(t, err)
	require.Equal(t, "abcdefghi", got)
}

func TestString_RoundTripThroughBufferedLayers(t *testing.T) {
	// Encode through a buffered sink over a memory backend and decode
	// through a buffered source, exercising the full stack the protocol
	// uses over descriptors.
	var raw []byte
	mem := stream.NewMemSinkWarn(&raw, nil)
	sink := stream.NewBufferedSink(memWriter{mem}, 8)

	require.NoError(t, WriteString(sink, "the quick brown fox"))
	require.NoError(t, WriteUint64(sink, 42))
	require.NoError(t, sink.Flush())

	src := stream.NewBufferedSource(&chunkReader{data: raw, chunk: 3}, 16)
	s, err := ReadString(src)
	require.NoError(t, err)
	require.Equal(t, "the quick brown fox", s)

	n, err := ReadUint64(src)
	require.NoError(t, err)
	require.Equal(t, uint64(42), n)
}

// memWriter adapts a memory sink into a raw backend writer.
type memWriter struct{ sink stream.Sink }

func (w memWriter) WriteRaw(p []byte) error { return w.sink.Push(p) }

// chunkReader feeds at most chunk bytes per backend call.
type chunkReader struct {
	data  []byte
	pos   int
	chunk int
}

func (r *chunkReader) ReadRaw(p []byte) (int, error) {
	if r.pos == len(r.data) {
		return 0, stream.ErrEndOfStream
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(r.data)-r.pos {
		n = len(r.data) - r.pos
	}
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}
