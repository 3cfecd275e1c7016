package array

import "slices"

// Equal reports whether a and b hold the same elements in the same order.
// Slots past Len are never compared.
func Equal[T comparable, S Slots[T]](a, b *Array[T, S]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a custom comparison. The arrays may differ in
// element type and capacity; arrays of different Len are never equal.
func EqualFunc[T1, T2 any, S1 Slots[T1], S2 Slots[T2]](a *Array[T1, S1], b *Array[T2, S2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Index returns the index of the first element equal to v, or -1.
func Index[T comparable, S Slots[T]](a *Array[T, S], v T) int {
	return slices.Index(a.Slice(), v)
}

func Contains[T comparable, S Slots[T]](a *Array[T, S], v T) bool {
	return Index(a, v) >= 0
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (a *Array[T, S]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(a.Slice(), f)
}
