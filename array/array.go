// Package array provides Array, a fixed-capacity sequence whose storage is
// embedded in the value itself. Capacity is chosen by the storage type and
// never changes; operations that would exceed it fail with
// ErrCapacityExceeded instead of reallocating.
//
// Slots below Len hold the elements. Slots at or above Len always hold the
// zero value of T and are never handed out.
//
// An Array is a plain value with no internal locking. Concurrent readers are
// fine; any mutation needs exclusive access.
package array

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"unsafe"
)

// Array stores up to len(S) values of T inline. The zero value is an empty
// array ready to use.
type Array[T any, S Slots[T]] struct {
	len  int
	data S
}

// New returns an empty array. No slot is initialized beyond its zero value.
func New[T any, S Slots[T]]() Array[T, S] {
	return Array[T, S]{}
}

// From returns an array holding values in order.
func From[T any, S Slots[T]](values ...T) (Array[T, S], error) {
	var a Array[T, S]
	if err := a.AppendSlice(values...); err != nil {
		return Array[T, S]{}, err
	}
	return a, nil
}

// slots views the whole storage block, occupied or not.
func (a *Array[T, S]) slots() []T {
	return unsafe.Slice(&a.data[0], len(a.data))
}

// Cap returns the number of slots.
func (a *Array[T, S]) Cap() int {
	return len(a.data)
}

// Len returns the number of occupied slots.
func (a *Array[T, S]) Len() int {
	return a.len
}

func (a *Array[T, S]) IsEmpty() bool {
	return a.len == 0
}

func (a *Array[T, S]) IsFull() bool {
	return a.len == len(a.data)
}

// Remaining returns how many more elements fit.
func (a *Array[T, S]) Remaining() int {
	return len(a.data) - a.len
}

// Push appends v. When the array is full it returns ErrCapacityExceeded and
// keeps no reference to v, so the caller remains its only owner.
func (a *Array[T, S]) Push(v T) error {
	if a.len == len(a.data) {
		return ErrCapacityExceeded
	}
	a.data[a.len] = v
	a.len++
	return nil
}

// Pop removes and returns the last element. It reports false on an empty
// array.
func (a *Array[T, S]) Pop() (T, bool) {
	var zero T
	if a.len == 0 {
		return zero, false
	}
	a.len--
	v := a.data[a.len]
	a.data[a.len] = zero
	return v, true
}

// Get returns the element at i.
func (a *Array[T, S]) Get(i int) (T, bool) {
	if i < 0 || i >= a.len {
		var zero T
		return zero, false
	}
	return a.data[i], true
}

// Ref returns a pointer to the element at i for in-place mutation. The
// pointer stays valid until the slot is vacated.
func (a *Array[T, S]) Ref(i int) (*T, bool) {
	if i < 0 || i >= a.len {
		return nil, false
	}
	return &a.data[i], true
}

// Last returns the element Pop would return, without removing it.
func (a *Array[T, S]) Last() (T, bool) {
	return a.Get(a.len - 1)
}

// Set replaces the element at i. Only occupied slots can be written; the
// replaced element is torn down unless it is v itself, so storing back a
// value read with Get is safe.
func (a *Array[T, S]) Set(i int, v T) error {
	if i < 0 || i >= a.len {
		return fmt.Errorf("%w: set %d with len %d", ErrOutOfRange, i, a.len)
	}
	old := a.data[i]
	a.data[i] = v
	if _, ok := any(old).(io.Closer); !ok || identical(old, v) {
		return nil
	}
	return dispose(old)
}

// Replace stores v at i and hands the previous element back to the caller
// instead of tearing it down.
func (a *Array[T, S]) Replace(i int, v T) (T, error) {
	if i < 0 || i >= a.len {
		var zero T
		return zero, fmt.Errorf("%w: replace %d with len %d", ErrOutOfRange, i, a.len)
	}
	old := a.data[i]
	a.data[i] = v
	return old, nil
}

// Slice returns the occupied prefix. The view shares storage with the array
// and its capacity is clipped, so appending to it never touches a free slot.
// It is invalidated by any operation that changes Len.
func (a *Array[T, S]) Slice() []T {
	return a.slots()[:a.len:a.len]
}

// Truncate keeps the first n elements and tears down the rest, highest index
// first. It does nothing when n >= Len.
func (a *Array[T, S]) Truncate(n int) error {
	if n < 0 {
		n = 0
	}
	var errs []error
	var zero T
	for a.len > n {
		a.len--
		v := a.data[a.len]
		a.data[a.len] = zero
		if err := dispose(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Clear tears down every element and leaves the array empty.
func (a *Array[T, S]) Clear() error {
	return a.Truncate(0)
}

// Close implements io.Closer. It is Clear; the array stays usable.
func (a *Array[T, S]) Close() error {
	return a.Clear()
}

// dispose runs the element's own teardown, if it has one.
func dispose[T any](v T) error {
	if c, ok := any(v).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// disposeAll tears down vs highest index first and zeroes each slot.
func disposeAll[T any](vs []T) error {
	var errs []error
	var zero T
	for i := len(vs) - 1; i >= 0; i-- {
		v := vs[i]
		vs[i] = zero
		if err := dispose(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// identical reports whether x and y are the same value, and so the same
// owner. Values that cannot be compared are never identical.
func identical[T any](x, y T) bool {
	vx, vy := reflect.ValueOf(any(x)), reflect.ValueOf(any(y))
	if !vx.IsValid() || !vy.IsValid() {
		return vx.IsValid() == vy.IsValid()
	}
	if vx.Type() != vy.Type() || !vx.Comparable() || !vy.Comparable() {
		return false
	}
	return vx.Equal(vy)
}
