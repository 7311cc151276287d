package internal

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ActionType uint8

const (
	InsertAction ActionType = iota
	RemoveAction
)

type TreeAction[V any] struct {
	Kind  ActionType
	Key   []byte
	Value V
}

type KV[V any] struct {
	Key   []byte
	Value V
}

// ExpectedEdge describes one edge met during a preorder traversal.
type ExpectedEdge[V any] struct {
	Depth    int
	Prefix   []byte
	Value    V
	HasValue bool
}

func SeedEdge[V any](depth int, prefix string) ExpectedEdge[V] {
	return ExpectedEdge[V]{Depth: depth, Prefix: []byte(prefix)}
}

func SeedEdgeWithValue[V any](depth int, prefix string, v V) ExpectedEdge[V] {
	return ExpectedEdge[V]{Depth: depth, Prefix: []byte(prefix), Value: v, HasValue: true}
}

// PreorderTraverseAndValidate checks the exact shape of the tree: every edge
// in preorder, with its depth, its label and the value of its child.
func PreorderTraverseAndValidate[V any](t *testing.T, root *Node[byte, V], expected []ExpectedEdge[V]) {
	var actual []ExpectedEdge[V]
	var traverse func(node *Node[byte, V], depth int)
	traverse = func(node *Node[byte, V], depth int) {
		for _, e := range node.edges {
			v, ok := e.child.GetValue()
			actual = append(actual, ExpectedEdge[V]{Depth: depth, Prefix: e.prefix, Value: v, HasValue: ok})
			traverse(e.child, depth+1)
		}
	}
	traverse(root, 0)

	require.Len(t, actual, len(expected), "number of edges")
	for i := range expected {
		assert.Equal(t, expected[i].Depth, actual[i].Depth, "depth of edge %d", i)
		assert.Equal(t, string(expected[i].Prefix), string(actual[i].Prefix), "prefix of edge %d", i)
		assert.Equal(t, expected[i].HasValue, actual[i].HasValue, "value presence of edge %d", i)
		assert.Equal(t, expected[i].Value, actual[i].Value, "value of edge %d", i)
	}
}

// ValidateInvariants walks the whole tree and fails on an empty non-root
// node, an empty edge label, or edges that are unsorted or share a leading component.
func ValidateInvariants[C Component, V any](t *testing.T, root *Node[C, V]) {
	var validate func(node *Node[C, V])
	validate = func(node *Node[C, V]) {
		for i, e := range node.edges {
			require.NotEmpty(t, e.prefix, "edge label must not be empty")
			require.False(t, e.child.IsEmpty(), "child of edge %v must not be empty", e.prefix)
			if i > 0 {
				require.Less(t, node.edges[i-1].prefix[0], e.prefix[0], "edges must be sorted and prefix free")
			}
			validate(e.child)
		}
	}
	validate(root)
}

func randomByte() byte {
	randomByte := make([]byte, 1)

	// Read random data into the byte slice
	_, err := rand.Read(randomByte)
	if err != nil {
		fmt.Println("Error generating random byte:", err)
		return 0
	}

	return randomByte[0]
}

func RandomBytes(num int) []byte {
	res := make([]byte, num)
	for i := 0; i < num; i++ {
		res[i] = randomByte()
	}
	return res
}

func RandomQuote() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	err := faker.FakeData(&quote)
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return quote.Sentence
}

func RandomWord() string {
	word := struct {
		Word string `faker:"word"`
	}{}

	err := faker.FakeData(&word)
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return word.Word
}

// SeedMapKVString generates sz distinct keys sharing many prefixes, each
// mapped to a random sentence.
func SeedMapKVString(sz int) []KV[string] {
	res := make([]KV[string], sz)
	for i := 0; i < sz; i++ {
		key := fmt.Sprintf("%s/%s/%d", RandomWord(), RandomWord(), i)
		res[i] = KV[string]{Key: []byte(key), Value: RandomQuote()}
	}

	return res
}
