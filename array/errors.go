package array

import "errors"

var (
	// ErrCapacityExceeded is returned when an operation would store more
	// elements than the array has slots. The array is left unchanged.
	ErrCapacityExceeded = errors.New("array: capacity exceeded")

	// ErrOutOfRange is returned for an index outside the occupied prefix.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrSelfAppend is returned by Append when both arguments are the same
	// array.
	ErrSelfAppend = errors.New("array: append of an array to itself")

	// ErrNotCloneable is returned by Clone when an element owns a resource
	// (it implements io.Closer) but cannot duplicate it through Cloner.
	ErrNotCloneable = errors.New("array: element cannot be cloned")
)
