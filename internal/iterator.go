package internal

import (
	"golang.org/x/exp/slices"

	"github.com/datnguyenzzz/nogodb/lib/go-radix-tree/internal/bufferpool"
)

type frame[C Component, V any] struct {
	node *Node[C, V]
	// next is the index of the next edge to descend into, counted in the iteration order
	next int
	// valueDone is set once the node's own value has been considered
	valueDone bool
	// mark is the length of the key buffer before this node's edge was appended
	mark int
}

// Iterator is a depth-first walk over a subtree. The key buffer grows when
// the walk enters an edge and is truncated back to the frame mark when it
// leaves the edge, so the buffer always spells the full key of the current
// node.
//
// The iterator only reads the tree. Mutating the tree while an iterator over
// it is alive leads to undefined results.
type Iterator[C Component, V any] struct {
	order Order
	stack []frame[C, V]
	buf   []C
	pool  *bufferpool.Pool[C]
}

// NewIterator returns an iterator over every value below root. Each yielded
// key is path followed by the components leading from root to the value.
// A nil root gives an exhausted iterator.
func NewIterator[C Component, V any](root *Node[C, V], path []C, order Order) *Iterator[C, V] {
	it := &Iterator[C, V]{
		order: order,
		buf:   slices.Clone(path),
	}
	if root != nil {
		it.stack = append(it.stack, frame[C, V]{node: root, mark: len(it.buf)})
	}
	return it
}

// NewPooledIterator is NewIterator with a key buffer taken from pool. The
// buffer goes back to the pool once the iterator is exhausted or closed.
func NewPooledIterator[C Component, V any](root *Node[C, V], path []C, order Order, pool *bufferpool.Pool[C]) *Iterator[C, V] {
	it := &Iterator[C, V]{
		order: order,
		buf:   append(pool.Get(len(path)), path...),
		pool:  pool,
	}
	if root != nil {
		it.stack = append(it.stack, frame[C, V]{node: root, mark: len(it.buf)})
	}
	return it
}

// Close stops the iteration and releases the key buffer. Next returns false
// afterwards.
func (it *Iterator[C, V]) Close() {
	it.stack = nil
	if it.pool != nil && it.buf != nil {
		it.pool.Put(it.buf)
	}
	it.buf = nil
}

// Next returns the next key and value. The key is owned by the caller.
func (it *Iterator[C, V]) Next() ([]C, V, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		node := top.node

		// ascending: the node's own value sorts before any key below it
		if it.order == AscOrder && !top.valueDone {
			top.valueDone = true
			if v, ok := node.GetValue(); ok {
				return slices.Clone(it.buf), v, true
			}
		}

		if top.next < len(node.edges) {
			idx := top.next
			if it.order == DescOrder {
				idx = len(node.edges) - 1 - top.next
			}
			top.next++

			prefix, child := node.edgeAt(idx)
			mark := len(it.buf)
			it.buf = append(it.buf, prefix...)
			it.stack = append(it.stack, frame[C, V]{node: child, mark: mark})
			continue
		}

		// descending: the node's own value sorts after every key below it
		if it.order == DescOrder && !top.valueDone {
			top.valueDone = true
			if v, ok := node.GetValue(); ok {
				return slices.Clone(it.buf), v, true
			}
		}

		it.buf = it.buf[:top.mark]
		it.stack = it.stack[:len(it.stack)-1]
	}

	it.Close()
	return nil, *new(V), false
}
