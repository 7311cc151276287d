// Compatible with the famous radix tree library - https://github.com/hashicorp/go-immutable-radix

package go_radix_tree

import (
	"fmt"
	"io"
	"iter"

	"github.com/datnguyenzzz/nogodb/lib/go-radix-tree/internal"
)

// KeyComponent is one element of a key: any type with a total order,
// equality and cheap copies. Strings are keyed by their bytes.
type KeyComponent interface {
	internal.Component
}

// WalkFn is used when walking the tree. Takes a key and value, returning if iteration should be terminated.
type WalkFn[C KeyComponent, V any] func(k []C, v V) bool

// Iterator walks key/value pairs in order. Keys are owned by the caller.
// Mutating the tree while an iterator over it is alive is not allowed.
type Iterator[C KeyComponent, V any] interface {
	// Next returns the next key and value, or false once exhausted
	Next() ([]C, V, bool)
	// Close stops an iteration early and recycles its key buffer
	Close()
}

type FindMode = internal.FindMode

const (
	// FindRelaxed lets Find match a prefix that ends inside an edge label,
	// e.g. Find("ap") returns "apple" even when "apple" is the only key.
	FindRelaxed = internal.FindRelaxed
	// FindStrict only matches a prefix that ends exactly on a node of the tree.
	FindStrict = internal.FindStrict
)

// errors
var (
	LockNotAcquired error = fmt.Errorf("lock not acquired")
)

// ITree shares the same interfaces with https://github.com/hashicorp/go-immutable-radix
type ITree[C KeyComponent, V any] interface {
	// Insert is used to add or update a given key. The return provides the previous value and a bool indicating if any was set.
	Insert(key []C, value V) (V, bool)
	// Remove is used to delete a given key. Returns the old value if any, and a bool indicating if the key was set.
	Remove(key []C) (V, bool)
	// Get is used to lookup a specific key, returning the value and if it was found
	Get(key []C) (V, bool)
	// LongestPrefix is like Get, but instead of an exact match, it will return the longest prefix match.
	LongestPrefix(key []C) ([]C, V, bool)
	// Minimum is used to return the minimum value in the tree
	Minimum() ([]C, V, bool)
	// Maximum is used to return the maximum value in the tree
	Maximum() ([]C, V, bool)
	// Walk is used to walk the tree
	Walk(fn WalkFn[C, V])
	// WalkBackwards is used to walk the tree in reverse order
	WalkBackwards(fn WalkFn[C, V])
	// WalkPrefix is used to walk the tree under a prefix
	WalkPrefix(prefix []C, fn WalkFn[C, V])
	// All iterates every key in ascending order
	All() iter.Seq2[[]C, V]
	// Backward iterates every key in descending order
	Backward() iter.Seq2[[]C, V]
	// Find iterates, in ascending order, every key starting with prefix
	Find(prefix []C) iter.Seq2[[]C, V]
	Len() int
	IsEmpty() bool
	Clear()
	GetStats() Stats
	ResetStats()
	Visualize(w io.Writer) error
}

var _ ITree[byte, any] = (*Tree[byte, any])(nil)
