package array

import "iter"

// All yields index/element pairs in index order. The bound is re-read every
// step, so shrinking the array inside the loop ends it early.
func (a *Array[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.len; i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values yields elements in index order.
func (a *Array[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.len; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element down.
func (a *Array[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.len - 1; i >= 0; i-- {
			if i >= a.len {
				continue
			}
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Refs yields pointers to the elements in index order.
func (a *Array[T, S]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < a.len; i++ {
			if !yield(i, &a.data[i]) {
				return
			}
		}
	}
}

// errModified is the panic value when an array is changed while Drain,
// Retain or DedupFunc own its slots.
const errModified = "array: modified during iteration"

// Drain moves the elements out front to back; each yielded value belongs to
// the caller. Breaking out of the loop, or a panic in its body, leaves the
// values not yet yielded at the front of the array.
//
// The loop body must not change the array. The array reads as empty while
// draining, and a Push or similar inside the loop panics once the body
// returns.
func (a *Array[T, S]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := a.len
		s := a.slots()
		i := 0
		a.len = 0
		defer func() {
			rest := n - i
			copy(s, s[i:n])
			clear(s[rest:n])
			a.len = rest
		}()
		var zero T
		for i < n {
			v := s[i]
			s[i] = zero
			i++
			more := yield(v)
			if a.len != 0 {
				panic(errModified)
			}
			if !more {
				return
			}
		}
	}
}
