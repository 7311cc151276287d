package go_radix_tree

import "iter"

// Set is an ordered set of keys backed by a Map with empty values.
type Set[K any, C KeyComponent] struct {
	m *Map[K, C, struct{}]
}

func NewSet[K any, C KeyComponent](codec KeyCodec[K, C], opts ...OptionFn) *Set[K, C] {
	return &Set[K, C]{m: NewMap[K, C, struct{}](codec, opts...)}
}

func NewStringSet(opts ...OptionFn) *Set[string, byte] {
	return NewSet[string, byte](StringCodec{}, opts...)
}

func NewSliceSet[C KeyComponent](opts ...OptionFn) *Set[[]C, C] {
	return NewSet[[]C, C](SliceCodec[C]{}, opts...)
}

// SetFrom builds a set holding every item.
func SetFrom[K any, C KeyComponent](items iter.Seq[K], codec KeyCodec[K, C], opts ...OptionFn) *Set[K, C] {
	s := NewSet[K, C](codec, opts...)
	for k := range items {
		s.Insert(k)
	}
	return s
}

// Insert adds key and reports whether it was not present yet.
func (s *Set[K, C]) Insert(key K) bool {
	_, had := s.m.Insert(key, struct{}{})
	return !had
}

func (s *Set[K, C]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Remove deletes key and reports whether it was present.
func (s *Set[K, C]) Remove(key K) bool {
	_, ok := s.m.Remove(key)
	return ok
}

func (s *Set[K, C]) Len() int {
	return s.m.Len()
}

func (s *Set[K, C]) IsEmpty() bool {
	return s.m.IsEmpty()
}

func (s *Set[K, C]) Clear() {
	s.m.Clear()
}

// All yields every key in ascending order.
func (s *Set[K, C]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Find yields, in ascending order, every key starting with prefix.
func (s *Set[K, C]) Find(prefix K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.Find(prefix) {
			if !yield(k) {
				return
			}
		}
	}
}
