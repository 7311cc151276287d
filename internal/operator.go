package internal

import "github.com/datnguyenzzz/nogodb/lib/go-radix-tree/internal/bufferpool"

// Insert stores v under key and returns the previous value, if any.
//
//	node: the root of the (sub)tree
//	key: the remaining, not yet consumed, components of the key
//	v: the value to store
func Insert[C Component, V any](node *Node[C, V], key []C, v V, stats *Stats) (V, bool) {
	for {
		if len(key) == 0 {
			old, had := node.setValue(v)
			if had {
				stats.Updates.Add(1)
			} else {
				stats.Inserts.Add(1)
			}
			return old, had
		}

		kind, idx, lcp := node.match(key)
		switch kind {
		case noMatch:
			node.addEdge(ownedKey(key), newLeaf[C, V](v))
			stats.Inserts.Add(1)
			return *new(V), false
		case fullMatch:
			_, child := node.edgeAt(idx)
			node = child
			key = key[lcp:]
		case partialMatch:
			splitEdge(node, idx, lcp, key[lcp:], v)
			stats.Splits.Add(1)
			stats.Inserts.Add(1)
			return *new(V), false
		}
	}
}

// splitEdge cuts the idx-th edge of node after lcp components. The original
// child moves unchanged below a new intermediate node, under the leftover of
// the edge prefix. The new value lands either on the intermediate node or on
// a sibling edge labelled with the leftover of the key.
func splitEdge[C Component, V any](node *Node[C, V], idx, lcp int, keySuffix []C, v V) {
	e := &node.edges[idx]

	mid := NewNode[C, V]()
	// both halves share the backing array of the original prefix, which is never written to
	mid.edges = []edge[C, V]{{prefix: e.prefix[lcp:], child: e.child}}
	e.prefix = e.prefix[:lcp:lcp]
	e.child = mid

	if len(keySuffix) == 0 {
		mid.setValue(v)
		return
	}
	mid.addEdge(ownedKey(keySuffix), newLeaf[C, V](v))
}

// Get returns the value stored under key.
func Get[C Component, V any](node *Node[C, V], key []C, stats *Stats) (V, bool) {
	for len(key) > 0 {
		kind, idx, lcp := node.match(key)
		if kind != fullMatch {
			// a key ending inside an edge label is not stored either
			stats.Misses.Add(1)
			return *new(V), false
		}
		_, node = node.edgeAt(idx)
		key = key[lcp:]
	}

	v, ok := node.GetValue()
	if ok {
		stats.Hits.Add(1)
	} else {
		stats.Misses.Add(1)
	}
	return v, ok
}

// Remove deletes the value stored under key and returns it.
// Edges whose child became empty are pruned while the recursion unwinds,
// so a chain of emptied ancestors disappears without another pass. With
// compact set, a child left with no value and a single edge is merged into
// its parent edge.
//
//	node: the current node
//	key: the remaining, not yet consumed, components of the key
func Remove[C Component, V any](node *Node[C, V], key []C, compact bool, stats *Stats) (V, bool) {
	if len(key) == 0 {
		old, had := node.takeValue()
		if had {
			stats.Removes.Add(1)
		}
		return old, had
	}

	kind, idx, lcp := node.match(key)
	if kind != fullMatch {
		return *new(V), false
	}

	_, child := node.edgeAt(idx)
	removed, ok := Remove(child, key[lcp:], compact, stats)
	if !ok {
		return *new(V), false
	}

	switch {
	case child.IsEmpty():
		node.removeEdge(idx)
		stats.Prunes.Add(1)
	case compact && !child.hasValue && len(child.edges) == 1:
		only := child.edges[0]
		node.edges[idx] = edge[C, V]{
			prefix: concatKey(node.edges[idx].prefix, only.prefix),
			child:  only.child,
		}
		stats.Merges.Add(1)
	}

	return removed, true
}

// Locate finds the subtree holding every key that starts with prefix.
// It returns the subtree root together with the literal path leading to it,
// which may be longer than prefix when the query ends inside an edge label.
func Locate[C Component, V any](node *Node[C, V], prefix []C, mode FindMode) (*Node[C, V], []C, bool) {
	path := make([]C, 0, len(prefix))
	for len(prefix) > 0 {
		kind, idx, lcp := node.match(prefix)
		switch {
		case kind == fullMatch:
		case kind == partialMatch && lcp == len(prefix) && mode == FindRelaxed:
			// the query is used up inside the edge label, every key below it still matches
		default:
			return nil, nil, false
		}
		edgePrefix, child := node.edgeAt(idx)
		path = append(path, edgePrefix...)
		node = child
		prefix = prefix[lcp:]
	}

	return node, path, true
}

// LongestPrefix returns the longest stored key that is a prefix of key.
func LongestPrefix[C Component, V any](node *Node[C, V], key []C) ([]C, V, bool) {
	var (
		bestLen   = -1
		bestValue V
		consumed  int
	)

	for {
		if v, ok := node.GetValue(); ok {
			bestLen, bestValue = consumed, v
		}
		if consumed == len(key) {
			break
		}
		kind, idx, lcp := node.match(key[consumed:])
		if kind != fullMatch {
			break
		}
		_, node = node.edgeAt(idx)
		consumed += lcp
	}

	if bestLen < 0 {
		return nil, *new(V), false
	}
	return ownedKey(key[:bestLen]), bestValue, true
}

// Walk iterates over every key below node in the given order and triggers
// the callback, until the callback returns true. A nil pool allocates a fresh
// key buffer.
func Walk[C Component, V any](node *Node[C, V], path []C, cb Callback[C, V], order Order, pool *bufferpool.Pool[C]) {
	var it *Iterator[C, V]
	if pool != nil {
		it = NewPooledIterator(node, path, order, pool)
	} else {
		it = NewIterator(node, path, order)
	}
	defer it.Close()

	for {
		k, v, ok := it.Next()
		if !ok || cb(k, v) {
			return
		}
	}
}
