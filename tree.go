package go_radix_tree

import (
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/datnguyenzzz/nogodb/lib/go-radix-tree/internal"
	"github.com/datnguyenzzz/nogodb/lib/go-radix-tree/internal/bufferpool"
)

// Tree is a radix tree (compressed trie) keyed by sequences of C.
// The tree is not safe for concurrent mutation. Any number of readers may
// share it as long as no writer is active, see SyncMap for a guarded variant.
type Tree[C KeyComponent, V any] struct {
	root  *internal.Node[C, V]
	size  int
	opts  options
	stats internal.Stats
	// bufs recycles the key buffers of walks and iterations
	bufs bufferpool.Pool[C]
}

func NewTree[C KeyComponent, V any](opts ...OptionFn) *Tree[C, V] {
	t := &Tree[C, V]{
		root: internal.NewNode[C, V](),
		opts: defaultOptions(),
	}
	for _, opt := range opts {
		opt(&t.opts)
	}

	return t
}

func (t *Tree[C, V]) Insert(key []C, value V) (V, bool) {
	old, had := internal.Insert(t.root, key, value, &t.stats)
	if !had {
		t.size++
	}
	return old, had
}

func (t *Tree[C, V]) Get(key []C) (V, bool) {
	return internal.Get(t.root, key, &t.stats)
}

func (t *Tree[C, V]) Remove(key []C) (V, bool) {
	merges := t.stats.Merges.Load()
	removed, ok := internal.Remove(t.root, key, t.opts.compaction, &t.stats)
	if !ok {
		return removed, false
	}

	t.size--
	if merged := t.stats.Merges.Load() - merges; merged > 0 {
		t.opts.logger.Debug("compacted nodes after removal", zap.Int("key_len", len(key)), zap.Int64("merged", merged))
	}
	return removed, true
}

// Clear drops every node of the tree.
func (t *Tree[C, V]) Clear() {
	t.opts.logger.Debug("clearing radix tree", zap.Int("size", t.size))
	t.root.Reset()
	t.size = 0
}

// IsEmpty reports whether the tree holds no value and no edge.
func (t *Tree[C, V]) IsEmpty() bool {
	return t.root.IsEmpty()
}

func (t *Tree[C, V]) Len() int {
	return t.size
}

func (t *Tree[C, V]) LongestPrefix(key []C) ([]C, V, bool) {
	return internal.LongestPrefix(t.root, key)
}

func (t *Tree[C, V]) Minimum() ([]C, V, bool) {
	return internal.NewIterator(t.root, nil, internal.AscOrder).Next()
}

func (t *Tree[C, V]) Maximum() ([]C, V, bool) {
	return internal.NewIterator(t.root, nil, internal.DescOrder).Next()
}

func (t *Tree[C, V]) Walk(fn WalkFn[C, V]) {
	internal.Walk(t.root, nil, internal.Callback[C, V](fn), internal.AscOrder, &t.bufs)
}

func (t *Tree[C, V]) WalkBackwards(fn WalkFn[C, V]) {
	internal.Walk(t.root, nil, internal.Callback[C, V](fn), internal.DescOrder, &t.bufs)
}

func (t *Tree[C, V]) WalkPrefix(prefix []C, fn WalkFn[C, V]) {
	node, path, ok := internal.Locate(t.root, prefix, t.opts.findMode)
	if !ok {
		return
	}
	internal.Walk(node, path, internal.Callback[C, V](fn), internal.AscOrder, &t.bufs)
}

// Iterator returns a fresh ascending iterator over the whole tree.
func (t *Tree[C, V]) Iterator() Iterator[C, V] {
	return internal.NewPooledIterator(t.root, nil, internal.AscOrder, &t.bufs)
}

// PrefixIterator returns an ascending iterator over the keys starting with prefix.
func (t *Tree[C, V]) PrefixIterator(prefix []C) Iterator[C, V] {
	node, path, _ := internal.Locate(t.root, prefix, t.opts.findMode)
	return internal.NewPooledIterator(node, path, internal.AscOrder, &t.bufs)
}

func (t *Tree[C, V]) All() iter.Seq2[[]C, V] {
	return func(yield func([]C, V) bool) {
		seq(internal.NewPooledIterator(t.root, nil, internal.AscOrder, &t.bufs), yield)
	}
}

func (t *Tree[C, V]) Backward() iter.Seq2[[]C, V] {
	return func(yield func([]C, V) bool) {
		seq(internal.NewPooledIterator(t.root, nil, internal.DescOrder, &t.bufs), yield)
	}
}

// Find yields, in ascending order, every key starting with prefix. The full
// key is yielded each time, not only the part after prefix.
func (t *Tree[C, V]) Find(prefix []C) iter.Seq2[[]C, V] {
	return func(yield func([]C, V) bool) {
		node, path, _ := internal.Locate(t.root, prefix, t.opts.findMode)
		seq(internal.NewPooledIterator(node, path, internal.AscOrder, &t.bufs), yield)
	}
}

func (t *Tree[C, V]) GetStats() Stats {
	return snapshotStats(&t.stats)
}

// ResetStats zeroes every counter. The tree itself is left untouched.
func (t *Tree[C, V]) ResetStats() {
	t.stats.Reset()
}

// Visualize writes the edge structure of the tree to w, for debugging.
func (t *Tree[C, V]) Visualize(w io.Writer) error {
	return internal.Visualize(w, t.root, formatPrefix[C])
}

func seq[C KeyComponent, V any](it *internal.Iterator[C, V], yield func([]C, V) bool) {
	defer it.Close()
	for {
		k, v, ok := it.Next()
		if !ok || !yield(k, v) {
			return
		}
	}
}

func formatPrefix[C KeyComponent](prefix []C) string {
	if b, ok := any(prefix).([]byte); ok {
		return fmt.Sprintf("%q", b)
	}
	return fmt.Sprint(prefix)
}
