package types

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"reflect"

	json "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"

	"github.com/quickwritereader/stackarray/array"
)

var ErrKeyNotFound = errors.New("types: key not found")

// Pair represents a key/value pair for initialization
type Pair[V any] struct {
	Key   string
	Value V
}

// Close tears down Value when it implements io.Closer. The map calls it for
// every entry it discards, so the map owns such values while they are stored.
func (p Pair[V]) Close() error {
	if c, ok := any(p.Value).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func OP[V any](k string, v V) Pair[V] {
	return Pair[V]{Key: k, Value: v}
}

// Alias for Pair[any]
type PairAny = Pair[any]

// OPAny is a helper to construct a Pair[any] inline.
func OPAny(k string, v any) PairAny {
	return PairAny{Key: k, Value: v}
}

// OrderedMap is a string-keyed map that remembers insertion order and holds
// at most len(S) entries. Entries are stored inline in an array.Array, so
// the map needs no heap storage of its own; lookups scan linearly, which
// suits the small capacities it is meant for.
//
//	var m types.OrderedMap[int, [8]types.Pair[int]]
type OrderedMap[V any, S array.Slots[Pair[V]]] struct {
	entries array.Array[Pair[V], S]
}

// NewOrderedMap creates a new OrderedMap, optionally initialized with pairs.
// Later pairs overwrite earlier ones with the same key.
func NewOrderedMap[V any, S array.Slots[Pair[V]]](pairs ...Pair[V]) (OrderedMap[V, S], error) {
	var om OrderedMap[V, S]
	for _, p := range pairs {
		if err := om.Set(p.Key, p.Value); err != nil {
			return OrderedMap[V, S]{}, err
		}
	}
	return om, nil
}

// FromMap takes a plain map and a desired key order and returns an
// OrderedMap with keys in that order. Keys missing from m are skipped.
func FromMap[V any, S array.Slots[Pair[V]]](m map[string]V, order []string) (OrderedMap[V, S], error) {
	var om OrderedMap[V, S]
	for _, k := range order {
		if v, ok := m[k]; ok {
			if err := om.Set(k, v); err != nil {
				return OrderedMap[V, S]{}, err
			}
		}
	}
	return om, nil
}

// Length
func (om *OrderedMap[V, S]) Len() int {
	return om.entries.Len()
}

func (om *OrderedMap[V, S]) Cap() int {
	return om.entries.Cap()
}

func (om *OrderedMap[V, S]) IsFull() bool {
	return om.entries.IsFull()
}

func (om *OrderedMap[V, S]) index(key string) int {
	return om.entries.IndexFunc(func(p Pair[V]) bool { return p.Key == key })
}

// Set inserts or updates a key. Updating keeps the key's position and closes
// the replaced value unless it is value itself; a new key on a full map
// returns array.ErrCapacityExceeded.
func (om *OrderedMap[V, S]) Set(key string, value V) error {
	if i := om.index(key); i >= 0 {
		return om.entries.Set(i, Pair[V]{Key: key, Value: value})
	}
	if err := om.entries.Push(Pair[V]{Key: key, Value: value}); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Get retrieves a value
func (om *OrderedMap[V, S]) Get(key string) (V, bool) {
	i := om.index(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	p, _ := om.entries.Get(i)
	return p.Value, true
}

// GetAs looks up key in a map of any values and asserts it to U, returning
// the zero U when the key is missing or holds another type.
func GetAs[U any, S array.Slots[PairAny]](om *OrderedMap[any, S], key string) U {
	v, ok := om.Get(key) // returns any
	if !ok {
		var zero U
		return zero
	}
	u, ok := v.(U)
	if !ok {
		var zero U
		return zero
	}
	return u
}

// Delete removes a key and hands back its value. Order of the remaining keys
// is kept.
func (om *OrderedMap[V, S]) Delete(key string) (V, bool) {
	i := om.index(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	p, _ := om.entries.Remove(i)
	return p.Value, true
}

// Clear removes every entry, newest first; values implementing io.Closer
// are closed.
func (om *OrderedMap[V, S]) Clear() error {
	return om.entries.Clear()
}

// Keys returns keys in insertion order
func (om *OrderedMap[V, S]) Keys() []string {
	keys := make([]string, 0, om.Len())
	for p := range om.entries.Values() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns values in insertion order
func (om *OrderedMap[V, S]) Values() []V {
	values := make([]V, 0, om.Len())
	for p := range om.entries.Values() {
		values = append(values, p.Value)
	}
	return values
}

// Items returns key/value pairs in insertion order
func (om *OrderedMap[V, S]) Items() []Pair[V] {
	return append([]Pair[V]{}, om.entries.Slice()...)
}

// MoveToEnd moves a key to the back (last) or front
func (om *OrderedMap[V, S]) MoveToEnd(key string, last bool) error {
	i := om.index(key)
	if i < 0 {
		return fmt.Errorf("move %q: %w", key, ErrKeyNotFound)
	}
	p, _ := om.entries.Remove(i)
	// the removal freed a slot, so neither call can fail
	if last {
		return om.entries.Push(p)
	}
	return om.entries.Insert(0, p)
}

func (om *OrderedMap[V, S]) Equal(other *OrderedMap[V, S]) bool {
	return array.EqualFunc(&om.entries, &other.entries, func(a, b Pair[V]) bool {
		return a.Key == b.Key && reflect.DeepEqual(a.Value, b.Value)
	})
}

// MarshalJSON encodes as JSON object in insertion order
func (om OrderedMap[V, S]) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, p := range om.entries.All() {
		keyBytes, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		valBytes, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, keyBytes...)
		buf = append(buf, ':')
		buf = append(buf, valBytes...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalJSON decodes a JSON object preserving document order. A repeated
// key keeps its first position and the later value, closing the earlier one.
// If the object has more distinct keys than Cap it fails with
// array.ErrCapacityExceeded, values decoded so far are closed and the map is
// left as it was. On success the previous entries are cleared first.
func (om *OrderedMap[V, S]) UnmarshalJSON(data []byte) error {
	cfg := jsoniter.ConfigCompatibleWithStandardLibrary
	it := cfg.BorrowIterator(data)
	defer cfg.ReturnIterator(it)

	var fresh OrderedMap[V, S]
	var setErr error
	it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		var val V
		it.ReadVal(&val)
		if it.Error != nil {
			return false
		}
		if setErr = fresh.Set(key, val); setErr != nil {
			// never stored, so nobody else will close it
			setErr = errors.Join(setErr, OP(key, val).Close())
		}
		return setErr == nil
	})
	if setErr != nil {
		return errors.Join(setErr, fresh.Clear())
	}
	if it.Error != nil && it.Error != io.EOF {
		return errors.Join(it.Error, fresh.Clear())
	}
	err := om.Clear()
	*om = fresh
	return err
}

// KeysIter returns an iterator over keys
func (om *OrderedMap[V, S]) KeysIter() iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := range om.entries.Values() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// ValuesIter returns an iterator over values
func (om *OrderedMap[V, S]) ValuesIter() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range om.entries.Values() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// ItemsIter returns an iterator over key/value pairs
func (om *OrderedMap[V, S]) ItemsIter() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for p := range om.entries.Values() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
