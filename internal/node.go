package internal

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Node holds an optional value and the edges leaving it. The edges are kept
// sorted by their first component, and no two of them start with the same
// component, so at most one edge can continue any given key.
type Node[C Component, V any] struct {
	value    V
	hasValue bool
	edges    []edge[C, V]
}

// edge consumes prefix, then continues in child. prefix is never empty.
type edge[C Component, V any] struct {
	prefix []C
	child  *Node[C, V]
}

func NewNode[C Component, V any]() *Node[C, V] {
	return &Node[C, V]{}
}

func newLeaf[C Component, V any](v V) *Node[C, V] {
	return &Node[C, V]{value: v, hasValue: true}
}

func (n *Node[C, V]) GetValue() (V, bool) {
	return n.value, n.hasValue
}

func (n *Node[C, V]) setValue(v V) (V, bool) {
	old, had := n.value, n.hasValue
	n.value, n.hasValue = v, true
	return old, had
}

func (n *Node[C, V]) takeValue() (V, bool) {
	old, had := n.value, n.hasValue
	n.value, n.hasValue = *new(V), false
	return old, had
}

// IsEmpty reports whether the node holds neither a value nor an edge.
func (n *Node[C, V]) IsEmpty() bool {
	return !n.hasValue && len(n.edges) == 0
}

func (n *Node[C, V]) EdgesLen() int {
	return len(n.edges)
}

// Reset drops every value and edge below the node.
func (n *Node[C, V]) Reset() {
	n.value, n.hasValue = *new(V), false
	n.edges = nil
}

// search looks up the edge starting with c. If there is none, the returned
// index is where such an edge has to be inserted to keep the edges sorted.
func (n *Node[C, V]) search(c C) (int, bool) {
	return slices.BinarySearchFunc(n.edges, c, func(e edge[C, V], target C) int {
		return cmp.Compare(e.prefix[0], target)
	})
}

// match classifies how key relates to the only edge that may continue it.
// It returns the edge index and the length of the common leading components.
func (n *Node[C, V]) match(key []C) (matchKind, int, int) {
	idx, found := n.search(key[0])
	if !found {
		return noMatch, idx, 0
	}

	lcp := findLCP(n.edges[idx].prefix, key)
	if lcp == len(n.edges[idx].prefix) {
		return fullMatch, idx, lcp
	}

	return partialMatch, idx, lcp
}

func (n *Node[C, V]) addEdge(prefix []C, child *Node[C, V]) {
	idx, found := n.search(prefix[0])
	if found {
		panic("edge with the same leading component already exists")
	}
	n.edges = slices.Insert(n.edges, idx, edge[C, V]{prefix: prefix, child: child})
}

func (n *Node[C, V]) removeEdge(idx int) {
	n.edges = slices.Delete(n.edges, idx, idx+1)
}

func (n *Node[C, V]) edgeAt(idx int) ([]C, *Node[C, V]) {
	e := n.edges[idx]
	return e.prefix, e.child
}
