package array

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf Array[byte, [16]byte]
	w := NewWriter(&buf)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, w.WriteByte(' '))
	n, err = w.WriteString("world")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, "hello world", string(w.Bytes()))
	assert.Equal(t, 11, buf.Len())
}

func TestWriterAllOrNothing(t *testing.T) {
	var buf Array[byte, [8]byte]
	w := NewWriter(&buf)

	_, err := fmt.Fprintf(w, "%d", 123456)
	require.NoError(t, err)

	n, err := w.Write([]byte("abc"))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 0, n)
	_, err = w.WriteString("abc")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "123456", string(w.Bytes()))

	require.NoError(t, w.WriteByte('7'))
	require.NoError(t, w.WriteByte('8'))
	assert.ErrorIs(t, w.WriteByte('9'), ErrCapacityExceeded)
	assert.True(t, buf.IsFull())
}

func TestWriterCopy(t *testing.T) {
	var buf Array[byte, [4]byte]
	w := NewWriter(&buf)

	_, err := io.WriteString(w, "abcd")
	require.NoError(t, err)
	w.Reset()
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, [4]byte{}, buf.data)

	_, err = io.WriteString(w, "xy")
	require.NoError(t, err)
	assert.Equal(t, "xy", string(w.Bytes()))
}
