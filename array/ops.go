package array

import (
	"errors"
	"fmt"
	"iter"
)

// Insert places v at index i and shifts the elements after it to the right.
// i may equal Len.
func (a *Array[T, S]) Insert(i int, v T) error {
	if i < 0 || i > a.len {
		return fmt.Errorf("%w: insert at %d with len %d", ErrOutOfRange, i, a.len)
	}
	if a.len == len(a.data) {
		return ErrCapacityExceeded
	}
	s := a.slots()
	copy(s[i+1:a.len+1], s[i:a.len])
	s[i] = v
	a.len++
	return nil
}

// Remove takes the element at i out of the array, shifting the elements
// after it to the left.
func (a *Array[T, S]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.len {
		return zero, fmt.Errorf("%w: remove %d with len %d", ErrOutOfRange, i, a.len)
	}
	s := a.slots()
	v := s[i]
	copy(s[i:a.len-1], s[i+1:a.len])
	a.len--
	s[a.len] = zero
	return v, nil
}

// SwapRemove takes the element at i out of the array and moves the last
// element into its place. It does not keep order but is O(1).
func (a *Array[T, S]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.len {
		return zero, fmt.Errorf("%w: swap remove %d with len %d", ErrOutOfRange, i, a.len)
	}
	v := a.data[i]
	a.len--
	a.data[i] = a.data[a.len]
	a.data[a.len] = zero
	return v, nil
}

// AppendSlice appends values in order. Either all of them fit or none is
// stored.
func (a *Array[T, S]) AppendSlice(values ...T) error {
	if len(values) > len(a.data)-a.len {
		return fmt.Errorf("%w: %d + %d exceeds %d", ErrCapacityExceeded, a.len, len(values), len(a.data))
	}
	copy(a.slots()[a.len:], values)
	a.len += len(values)
	return nil
}

// Append moves every element of other to the end of a and leaves other
// empty. Either all of them fit or neither array changes.
func (a *Array[T, S]) Append(other *Array[T, S]) error {
	if a == other {
		return ErrSelfAppend
	}
	if err := a.AppendSlice(other.Slice()...); err != nil {
		return err
	}
	clear(other.slots()[:other.len])
	other.len = 0
	return nil
}

// AppendSeq appends the values produced by seq. If they do not all fit, the
// values appended by this call are dropped again and ErrCapacityExceeded is
// returned; the rejected values are never torn down since the array never
// owned them past this call.
// A panic in seq rolls back the same way.
func (a *Array[T, S]) AppendSeq(seq iter.Seq[T]) error {
	start := a.len
	done := false
	defer func() {
		if !done && a.len > start {
			clear(a.slots()[start:a.len])
			a.len = start
		}
	}()
	for v := range seq {
		if a.Push(v) != nil {
			return fmt.Errorf("%w: sequence longer than %d free slots", ErrCapacityExceeded, len(a.data)-start)
		}
	}
	done = true
	return nil
}

// Collect builds an array from seq.
func Collect[T any, S Slots[T]](seq iter.Seq[T]) (Array[T, S], error) {
	var a Array[T, S]
	if err := a.AppendSeq(seq); err != nil {
		return Array[T, S]{}, err
	}
	return a, nil
}

// Retain keeps the elements for which keep returns true, in order, and tears
// down the others. keep may modify the element it is given.
//
// If keep panics, the elements not yet visited are shifted down behind the
// kept ones before the panic continues, so Len still covers exactly the live
// elements. keep must not change the array itself; doing so panics.
func (a *Array[T, S]) Retain(keep func(*T) bool) error {
	n := a.len
	s := a.slots()
	kept, i := 0, 0
	a.len = 0
	defer func() {
		tail := n - i
		if kept != i {
			copy(s[kept:], s[i:n])
			clear(s[kept+tail : n])
		}
		a.len = kept + tail
	}()

	var errs []error
	for i < n {
		ok := keep(&s[i])
		if a.len != 0 {
			panic(errModified)
		}
		if ok {
			if kept != i {
				s[kept] = s[i]
			}
			kept++
			i++
			continue
		}
		v := s[i]
		i++
		if err := dispose(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DedupFunc removes every element for which same(cur, prev) reports true,
// where prev is the last element kept before it. Only consecutive runs are
// collapsed; the first element of each run stays. Removed elements are torn
// down. same must not change the array; doing so panics.
func (a *Array[T, S]) DedupFunc(same func(cur, prev *T) bool) error {
	if a.len < 2 {
		return nil
	}
	n := a.len
	s := a.slots()
	kept, i := 1, 1
	a.len = 0
	defer func() {
		tail := n - i
		if kept != i {
			copy(s[kept:], s[i:n])
			clear(s[kept+tail : n])
		}
		a.len = kept + tail
	}()

	var errs []error
	for i < n {
		dup := same(&s[i], &s[kept-1])
		if a.len != 0 {
			panic(errModified)
		}
		if !dup {
			if kept != i {
				s[kept] = s[i]
			}
			kept++
			i++
			continue
		}
		v := s[i]
		i++
		if err := dispose(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Dedup removes consecutive equal elements.
func Dedup[T comparable, S Slots[T]](a *Array[T, S]) error {
	return a.DedupFunc(func(cur, prev *T) bool { return *cur == *prev })
}
