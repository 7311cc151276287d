package go_radix_tree

import "unsafe"

// KeyCodec presents a key type K as a sequence of components C, and rebuilds
// an owned K from components gathered during a traversal. FromSlice must be
// the inverse of AsSlice for every sequence the tree can yield.
type KeyCodec[K any, C KeyComponent] interface {
	// AsSlice returns a borrowed, read-only view of the key
	AsSlice(key K) []C
	// FromSlice takes ownership of components and returns the key they spell
	FromSlice(components []C) K
}

// StringCodec keys strings by their raw bytes. Comparison is bytewise and
// not locale aware. Go strings may hold arbitrary bytes, so rebuilding a key
// never fails, even when a traversal yields bytes that are not valid UTF-8.
type StringCodec struct{}

func (StringCodec) AsSlice(key string) []byte {
	// the tree never writes into a borrowed key, it copies what it keeps
	return unsafe.Slice(unsafe.StringData(key), len(key))
}

func (StringCodec) FromSlice(components []byte) string {
	return string(components)
}

// SliceCodec keys raw slices of any ordered element type.
type SliceCodec[C KeyComponent] struct{}

func (SliceCodec[C]) AsSlice(key []C) []C {
	return key
}

func (SliceCodec[C]) FromSlice(components []C) []C {
	return components
}

// Sequence lets a user defined type present itself as a sequence of components.
type Sequence[C KeyComponent] interface {
	Components() []C
}

// SequenceCodec adapts any Sequence. New builds an S back from its components.
type SequenceCodec[S Sequence[C], C KeyComponent] struct {
	New func(components []C) S
}

func (c SequenceCodec[S, C]) AsSlice(key S) []C {
	return key.Components()
}

func (c SequenceCodec[S, C]) FromSlice(components []C) S {
	return c.New(components)
}

var (
	_ KeyCodec[string, byte] = StringCodec{}
	_ KeyCodec[[]int, int]   = SliceCodec[int]{}
)
