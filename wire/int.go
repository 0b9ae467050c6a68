package wire

import (
	"encoding/binary"

	"github.com/justapithecus/sluice/stream"
)

// IntSize is the on-wire width of every unsigned integer field.
const IntSize = 8

// WriteUint64 emits n as 8 bytes little-endian, regardless of value.
func WriteUint64(dst stream.Sink, n uint64) error {
	var buf [IntSize]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return dst.Push(buf[:])
}

// ReadUint64 reads 8 bytes and reconstructs the full little-endian value
// with no range check.
func ReadUint64(src stream.Source) (uint64, error) {
	var buf [IntSize]byte
	if err := stream.Pull(src, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadUint32 reads an 8-byte integer field and additionally enforces
// that the value fits in 32 bits; a nonzero high word is a structural
// violation. String lengths and collection counts decode through this
// entry point.
func ReadUint32(src stream.Source) (uint32, error) {
	var buf [IntSize]byte
	if err := stream.Pull(src, buf[:]); err != nil {
		return 0, err
	}
	if buf[4]|buf[5]|buf[6]|buf[7] != 0 {
		return 0, &Error{Kind: ErrorStructural, Msg: "integer does not fit in 32 bits"}
	}
	return binary.LittleEndian.Uint32(buf[:4]), nil
}
