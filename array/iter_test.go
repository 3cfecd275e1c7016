package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterators(t *testing.T) {
	a, _ := From[string, [4]string]("a", "b", "c")

	var idx []int
	var vals []string
	for i, v := range a.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)

	// restartable and non-consuming
	vals = vals[:0]
	for v := range a.Values() {
		vals = append(vals, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, vals)
	assert.Equal(t, 3, a.Len())

	vals = vals[:0]
	idx = idx[:0]
	for i, v := range a.Backward() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{2, 1, 0}, idx)
	assert.Equal(t, []string{"c", "b", "a"}, vals)
}

func TestIteratorEarlyStop(t *testing.T) {
	a, _ := From[int, [4]int](1, 2, 3, 4)
	n := 0
	for v := range a.Values() {
		n++
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestIteratorStopsAtShrink(t *testing.T) {
	a, _ := From[int, [4]int](1, 2, 3, 4)
	var seen []int
	for _, v := range a.All() {
		seen = append(seen, v)
		a.Pop()
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestRefs(t *testing.T) {
	a, _ := From[int, [4]int](1, 2, 3)
	for _, p := range a.Refs() {
		*p *= 2
	}
	assert.Equal(t, []int{2, 4, 6}, a.Slice())
}

func TestDrain(t *testing.T) {
	a, _ := From[string, [4]string]("a", "b", "c")
	var got []string
	for v := range a.Drain() {
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, [4]string{}, a.data)
}

func TestDrainBreakRestoresRest(t *testing.T) {
	a, _ := From[int, [8]int](1, 2, 3, 4, 5)
	var got []int
	for v := range a.Drain() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{3, 4, 5}, a.Slice())
	assert.Equal(t, [8]int{3, 4, 5}, a.data)
}

func TestDrainPanicRestoresRest(t *testing.T) {
	var closed []int
	hs := newHandles(&closed, 3)
	a, _ := From[*handle, [3]*handle](hs...)

	var got []*handle
	assert.Panics(t, func() {
		for h := range a.Drain() {
			got = append(got, h)
			panic("body failed")
		}
	})
	require.Len(t, got, 1)
	assert.Same(t, hs[0], got[0])
	assert.Equal(t, 2, a.Len())

	// the drained handle is the caller's, the rest still the array's
	require.NoError(t, a.Close())
	assert.Equal(t, []int{2, 1}, closed)
}

func TestDrainModifiedPanics(t *testing.T) {
	a, _ := From[int, [4]int](1, 2, 3)

	assert.PanicsWithValue(t, errModified, func() {
		for range a.Drain() {
			_ = a.Push(9)
		}
	})
	assert.Equal(t, []int{2, 3}, a.Slice(), "values not yet drained are kept")
}
