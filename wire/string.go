package wire

import (
	"fmt"

	"github.com/justapithecus/sluice/stream"
)

// Align is the alignment unit of the string encoding. A string's payload
// is followed by zero bytes bringing its length up to the next multiple
// of Align; the 8-byte length field does not participate.
const Align = 8

// Padding returns the number of zero bytes following a payload of n
// bytes.
func Padding(n int) int {
	return (Align - n%Align) % Align
}

// WriteBytes encodes p as a length-prefixed, zero-padded byte string.
// The empty string encodes as exactly the 8 zero length bytes.
func WriteBytes(dst stream.Sink, p []byte) error {
	if err := WriteUint64(dst, uint64(len(p))); err != nil {
		return err
	}
	if err := dst.Push(p); err != nil {
		return err
	}
	return writePadding(dst, len(p))
}

// WriteString encodes s as a byte string.
func WriteString(dst stream.Sink, s string) error {
	return WriteBytes(dst, []byte(s))
}

// ReadBytesMax decodes a byte string, rejecting lengths above max with a
// capacity error before allocating or consuming any payload bytes.
func ReadBytesMax(src stream.Source, max int) ([]byte, error) {
	n, err := ReadUint32(src)
	if err != nil {
		return nil, err
	}
	if int(n) > max {
		return nil, &Error{
			Kind: ErrorCapacity,
			Msg:  fmt.Sprintf("string length %d exceeds maximum %d", n, max),
		}
	}
	buf := make([]byte, n)
	if err := stream.Pull(src, buf); err != nil {
		return nil, err
	}
	if err := readPadding(src, int(n)); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadBytes decodes a byte string with no caller-imposed length bound.
// The fresh buffer is sized to the decoded length, which the 32-bit
// length entry point already caps below 4 GiB.
func ReadBytes(src stream.Source) ([]byte, error) {
	n, err := ReadUint32(src)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := stream.Pull(src, buf); err != nil {
		return nil, err
	}
	if err := readPadding(src, int(n)); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadString decodes an unbounded byte string as a string.
func ReadString(src stream.Source) (string, error) {
	b, err := ReadBytes(src)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadStringMax decodes a bounded byte string as a string.
func ReadStringMax(src stream.Source, max int) (string, error) {
	b, err := ReadBytesMax(src, max)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writePadding(dst stream.Sink, n int) error {
	pad := Padding(n)
	if pad == 0 {
		return nil
	}
	var zero [Align]byte
	return dst.Push(zero[:pad])
}

func readPadding(src stream.Source, n int) error {
	pad := Padding(n)
	if pad == 0 {
		return nil
	}
	var buf [Align]byte
	if err := stream.Pull(src, buf[:pad]); err != nil {
		return err
	}
	for _, b := range buf[:pad] {
		if b != 0 {
			return &Error{Kind: ErrorStructural, Msg: "non-zero padding"}
		}
	}
	return nil
}
