package iox

import (
	"errors"
	"testing"
)

type flaky struct {
	closed  bool
	flushed bool
}

func (f *flaky) Close() error {
	f.closed = true
	return errors.New("close failed")
}

func (f *flaky) Flush() error {
	f.flushed = true
	return errors.New("flush failed")
}

func TestDiscardClose(t *testing.T) {
	f := &flaky{}
	DiscardClose(f)
	if !f.closed {
		t.Fatal("Close was not called")
	}
}

func TestCloseFunc(t *testing.T) {
	f := &flaky{}
	CloseFunc(f)()
	if !f.closed {
		t.Fatal("Close was not called")
	}
}

func TestDiscardErr(t *testing.T) {
	f := &flaky{}
	DiscardErr(f.Flush)
	if !f.flushed {
		t.Fatal("Flush was not called")
	}
}
