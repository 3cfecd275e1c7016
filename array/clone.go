package array

import (
	"fmt"
	"io"
)

// Cloner is implemented by element types that own resources and need a deep
// copy. Clone hands each element to it.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns an independent copy. Elements implementing Cloner[T] are
// duplicated through it; the rest are assigned, which is already a deep copy
// for value types and strings.
//
// An element that implements io.Closer but not Cloner[T] owns something
// assignment would share, so Clone fails with ErrNotCloneable and copies
// nothing. CloneFunc lets the caller decide how such elements are copied.
func (a *Array[T, S]) Clone() (Array[T, S], error) {
	for i := 0; i < a.len; i++ {
		v := any(a.data[i])
		if _, ok := v.(Cloner[T]); ok {
			continue
		}
		if _, ok := v.(io.Closer); ok {
			return Array[T, S]{}, fmt.Errorf("%w: %T at %d", ErrNotCloneable, v, i)
		}
	}
	return a.CloneFunc(func(v T) T {
		if c, ok := any(v).(Cloner[T]); ok {
			return c.Clone()
		}
		return v
	}), nil
}

// CloneFunc returns a copy whose elements are produced by dup.
func (a *Array[T, S]) CloneFunc(dup func(T) T) Array[T, S] {
	var out Array[T, S]
	for i := 0; i < a.len; i++ {
		out.data[i] = dup(a.data[i])
		out.len++
	}
	return out
}
