package go_radix_tree

import (
	"io"
	"iter"
)

// Map is an ordered map on top of a radix tree. Keys of type K are turned
// into component sequences by a KeyCodec.
//
// Radix trees are fairly memory efficient when keys share long prefixes, at
// the cost of slower insertion than a hash map. Use Map when prefix search
// over a large set of keys matters; otherwise a sorted tree such as a B-tree
// is usually the better fit.
type Map[K any, C KeyComponent, V any] struct {
	tree  *Tree[C, V]
	codec KeyCodec[K, C]
}

func NewMap[K any, C KeyComponent, V any](codec KeyCodec[K, C], opts ...OptionFn) *Map[K, C, V] {
	return &Map[K, C, V]{
		tree:  NewTree[C, V](opts...),
		codec: codec,
	}
}

// NewStringMap returns a map keyed by strings.
//
//	m := NewStringMap[int]()
//	m.Insert("a", 1)
func NewStringMap[V any](opts ...OptionFn) *Map[string, byte, V] {
	return NewMap[string, byte, V](StringCodec{}, opts...)
}

// NewSliceMap returns a map keyed by slices of C.
func NewSliceMap[C KeyComponent, V any](opts ...OptionFn) *Map[[]C, C, V] {
	return NewMap[[]C, C, V](SliceCodec[C]{}, opts...)
}

// MapFrom builds a map from key/value pairs. Later pairs overwrite earlier ones.
func MapFrom[K any, C KeyComponent, V any](pairs iter.Seq2[K, V], codec KeyCodec[K, C], opts ...OptionFn) *Map[K, C, V] {
	m := NewMap[K, C, V](codec, opts...)
	for k, v := range pairs {
		m.Insert(k, v)
	}
	return m
}

// Insert adds or updates key. If the map already had the key, the old value
// is returned along with true.
func (m *Map[K, C, V]) Insert(key K, value V) (V, bool) {
	return m.tree.Insert(m.codec.AsSlice(key), value)
}

func (m *Map[K, C, V]) Get(key K) (V, bool) {
	return m.tree.Get(m.codec.AsSlice(key))
}

func (m *Map[K, C, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes key, returning the value it held if the key was present.
func (m *Map[K, C, V]) Remove(key K) (V, bool) {
	return m.tree.Remove(m.codec.AsSlice(key))
}

func (m *Map[K, C, V]) Len() int {
	return m.tree.Len()
}

func (m *Map[K, C, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

func (m *Map[K, C, V]) Clear() {
	m.tree.Clear()
}

// All yields every entry sorted by key.
func (m *Map[K, C, V]) All() iter.Seq2[K, V] {
	return m.decode(m.tree.All())
}

// Backward yields every entry in descending key order.
func (m *Map[K, C, V]) Backward() iter.Seq2[K, V] {
	return m.decode(m.tree.Backward())
}

func (m *Map[K, C, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value, sorted by the corresponding key.
func (m *Map[K, C, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.tree.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Find yields the entries whose key starts with prefix, sorted by key. The
// full key is yielded each time, not only the part after prefix.
func (m *Map[K, C, V]) Find(prefix K) iter.Seq2[K, V] {
	return m.decode(m.tree.Find(m.codec.AsSlice(prefix)))
}

func (m *Map[K, C, V]) LongestPrefix(key K) (K, V, bool) {
	k, v, ok := m.tree.LongestPrefix(m.codec.AsSlice(key))
	if !ok {
		return *new(K), v, false
	}
	return m.codec.FromSlice(k), v, true
}

func (m *Map[K, C, V]) Minimum() (K, V, bool) {
	k, v, ok := m.tree.Minimum()
	if !ok {
		return *new(K), v, false
	}
	return m.codec.FromSlice(k), v, true
}

func (m *Map[K, C, V]) Maximum() (K, V, bool) {
	k, v, ok := m.tree.Maximum()
	if !ok {
		return *new(K), v, false
	}
	return m.codec.FromSlice(k), v, true
}

func (m *Map[K, C, V]) GetStats() Stats {
	return m.tree.GetStats()
}

func (m *Map[K, C, V]) ResetStats() {
	m.tree.ResetStats()
}

func (m *Map[K, C, V]) Visualize(w io.Writer) error {
	return m.tree.Visualize(w)
}

func (m *Map[K, C, V]) decode(entries iter.Seq2[[]C, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range entries {
			if !yield(m.codec.FromSlice(k), v) {
				return
			}
		}
	}
}
