package array

import (
	"fmt"
	"io"
)

var (
	_ io.Writer       = (*Writer[[1]byte])(nil)
	_ io.ByteWriter   = (*Writer[[1]byte])(nil)
	_ io.StringWriter = (*Writer[[1]byte])(nil)
)

// Writer appends to a byte Array. A write that does not fit in the remaining
// slots stores nothing and fails with ErrCapacityExceeded; the buffer never
// grows.
type Writer[S Slots[byte]] struct {
	buf *Array[byte, S]
}

func NewWriter[S Slots[byte]](buf *Array[byte, S]) *Writer[S] {
	return &Writer[S]{buf: buf}
}

func (w *Writer[S]) Write(p []byte) (int, error) {
	if err := w.buf.AppendSlice(p...); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *Writer[S]) WriteByte(c byte) error {
	return w.buf.Push(c)
}

func (w *Writer[S]) WriteString(s string) (int, error) {
	if len(s) > w.buf.Remaining() {
		return 0, fmt.Errorf("%w: %d bytes for %d free slots", ErrCapacityExceeded, len(s), w.buf.Remaining())
	}
	n := copy(w.buf.slots()[w.buf.len:], s)
	w.buf.len += n
	return n, nil
}

// Bytes returns the written bytes. See Array.Slice for the lifetime rules.
func (w *Writer[S]) Bytes() []byte {
	return w.buf.Slice()
}

func (w *Writer[S]) Len() int {
	return w.buf.Len()
}

// Reset empties the underlying array.
func (w *Writer[S]) Reset() {
	clear(w.buf.Slice())
	w.buf.len = 0
}
