package internal

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// Component is a single element of a key. Edges are ordered by their first Component.
type Component interface {
	constraints.Ordered
}

type Callback[C Component, V any] func(k []C, v V) bool

type Order int8

const (
	AscOrder Order = iota
	DescOrder
)

type FindMode int8

const (
	// FindRelaxed accepts a query prefix that ends inside an edge label
	FindRelaxed FindMode = iota
	// FindStrict only accepts a query prefix that ends exactly on a node
	FindStrict
)

type matchKind int8

const (
	noMatch matchKind = iota
	// fullMatch means the whole edge prefix is a prefix of the remaining key
	fullMatch
	// partialMatch means the remaining key diverges from, or ends inside, the edge prefix
	partialMatch
)

// Stats counts the structural work done by the engine. Reads may happen
// concurrently, so every counter is atomic.
type Stats struct {
	Inserts atomic.Int64
	Updates atomic.Int64
	Removes atomic.Int64
	Hits    atomic.Int64
	Misses  atomic.Int64
	Splits  atomic.Int64
	Prunes  atomic.Int64
	Merges  atomic.Int64
}

func (s *Stats) Reset() {
	s.Inserts.Store(0)
	s.Updates.Store(0)
	s.Removes.Store(0)
	s.Hits.Store(0)
	s.Misses.Store(0)
	s.Splits.Store(0)
	s.Prunes.Store(0)
	s.Merges.Store(0)
}
