package array

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ json.Marshaler        = Array[int, [1]int]{}
	_ json.Unmarshaler      = (*Array[int, [1]int])(nil)
	_ msgpack.CustomEncoder = Array[int, [1]int]{}
	_ msgpack.CustomDecoder = (*Array[int, [1]int])(nil)
)

// MarshalJSON encodes the occupied slots as a JSON array. An empty array
// encodes as [] rather than null.
func (a Array[T, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Slice())
}

// UnmarshalJSON replaces the contents with a JSON array. A document with more
// elements than Cap fails with ErrCapacityExceeded and leaves the array
// untouched; elements decoded before a failure are torn down. On success the
// previous elements are torn down. null decodes to an empty array.
func (a *Array[T, S]) UnmarshalJSON(data []byte) error {
	var fresh Array[T, S]
	buf := fresh.slots()[:0]
	if err := json.Unmarshal(data, &buf); err != nil {
		return errors.Join(err, disposeAll(buf))
	}
	if len(buf) > fresh.Cap() {
		err := fmt.Errorf("%w: %d elements for %d slots", ErrCapacityExceeded, len(buf), fresh.Cap())
		return errors.Join(err, disposeAll(buf))
	}
	// no-op when the decoder filled the storage in place
	copy(fresh.slots(), buf)
	fresh.len = len(buf)
	return a.replace(&fresh)
}

// EncodeMsgpack implements msgpack.CustomEncoder as a msgpack array of the
// occupied slots.
func (a Array[T, S]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(a.len); err != nil {
		return err
	}
	for i := 0; i < a.len; i++ {
		if err := enc.Encode(a.data[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder with the same replacement
// rules as UnmarshalJSON.
func (a *Array[T, S]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	var fresh Array[T, S]
	if n > fresh.Cap() {
		return fmt.Errorf("%w: %d elements for %d slots", ErrCapacityExceeded, n, fresh.Cap())
	}
	for i := 0; i < n; i++ {
		if err := dec.Decode(&fresh.data[i]); err != nil {
			return errors.Join(err, fresh.Clear())
		}
		fresh.len++
	}
	return a.replace(&fresh)
}

// replace tears down the current elements and takes over those of fresh.
func (a *Array[T, S]) replace(fresh *Array[T, S]) error {
	err := a.Clear()
	*a = *fresh
	return err
}
