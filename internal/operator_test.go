package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyActions[V any](t *testing.T, root *Node[byte, V], actions []TreeAction[V], compact bool, stats *Stats) {
	for idx, action := range actions {
		switch action.Kind {
		case InsertAction:
			Insert(root, action.Key, action.Value, stats)
		case RemoveAction:
			_, ok := Remove(root, action.Key, compact, stats)
			assert.True(t, ok, "shouldn't fail to remove key %q, at action: %v-th", action.Key, idx)
		}
		ValidateInvariants(t, root)
	}
}

func Test_InsertAndRemove_shape(t *testing.T) {
	type param struct {
		desc             string
		actions          []TreeAction[int]
		compact          bool
		expectedPreorder []ExpectedEdge[int]
	}

	testList := []param{
		{
			desc: "Happy case #1 - Insert exactly 1 key",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("Hello Go Lovers!!"), Value: 1},
			},
			expectedPreorder: []ExpectedEdge[int]{
				SeedEdgeWithValue(0, "Hello Go Lovers!!", 1),
			},
		},
		{
			desc: "Happy case #2 - Insert a key and remove it",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("Hello Go Lovers!!"), Value: 1},
				{Kind: RemoveAction, Key: []byte("Hello Go Lovers!!")},
			},
			expectedPreorder: []ExpectedEdge[int]{},
		},
		{
			desc: "Happy case #3 - Split keeps every value on its own node",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("abc"), Value: 0},
				{Kind: InsertAction, Key: []byte("ab"), Value: 1},
				{Kind: InsertAction, Key: []byte("a"), Value: 2},
			},
			expectedPreorder: []ExpectedEdge[int]{
				SeedEdgeWithValue(0, "a", 2),
				SeedEdgeWithValue(1, "b", 1),
				SeedEdgeWithValue(2, "c", 0),
			},
		},
		{
			desc: "Happy case #4 - Split with a diverging suffix adds a sibling edge",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("abc"), Value: 0},
				{Kind: InsertAction, Key: []byte("ac"), Value: 1},
				{Kind: InsertAction, Key: []byte("bc"), Value: 2},
				{Kind: InsertAction, Key: []byte("a"), Value: 3},
				{Kind: InsertAction, Key: []byte("ab"), Value: 4},
			},
			expectedPreorder: []ExpectedEdge[int]{
				SeedEdgeWithValue(0, "a", 3),
				SeedEdgeWithValue(1, "b", 4),
				SeedEdgeWithValue(2, "c", 0),
				SeedEdgeWithValue(1, "c", 1),
				SeedEdgeWithValue(0, "bc", 2),
			},
		},
		{
			desc: "Happy case #5 - Removal leaves a valueless intermediate node untouched",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("abc"), Value: 0},
				{Kind: InsertAction, Key: []byte("ac"), Value: 1},
				{Kind: InsertAction, Key: []byte("bc"), Value: 2},
				{Kind: InsertAction, Key: []byte("a"), Value: 3},
				{Kind: InsertAction, Key: []byte("ab"), Value: 4},
				{Kind: RemoveAction, Key: []byte("ab")},
			},
			expectedPreorder: []ExpectedEdge[int]{
				SeedEdgeWithValue(0, "a", 3),
				SeedEdge[int](1, "b"),
				SeedEdgeWithValue(2, "c", 0),
				SeedEdgeWithValue(1, "c", 1),
				SeedEdgeWithValue(0, "bc", 2),
			},
		},
		{
			desc: "Happy case #6 - Same as #5 with compaction, the intermediate node is merged",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("abc"), Value: 0},
				{Kind: InsertAction, Key: []byte("ac"), Value: 1},
				{Kind: InsertAction, Key: []byte("bc"), Value: 2},
				{Kind: InsertAction, Key: []byte("a"), Value: 3},
				{Kind: InsertAction, Key: []byte("ab"), Value: 4},
				{Kind: RemoveAction, Key: []byte("ab")},
			},
			compact: true,
			expectedPreorder: []ExpectedEdge[int]{
				SeedEdgeWithValue(0, "a", 3),
				SeedEdgeWithValue(1, "bc", 0),
				SeedEdgeWithValue(1, "c", 1),
				SeedEdgeWithValue(0, "bc", 2),
			},
		},
		{
			desc: "Happy case #7 - Pruning cascades up a chain of emptied nodes",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("abc"), Value: 0},
				{Kind: InsertAction, Key: []byte("ab"), Value: 1},
				{Kind: InsertAction, Key: []byte("a"), Value: 2},
				{Kind: InsertAction, Key: []byte("b"), Value: 3},
				{Kind: RemoveAction, Key: []byte("a")},
				{Kind: RemoveAction, Key: []byte("abc")},
				{Kind: RemoveAction, Key: []byte("ab")},
			},
			expectedPreorder: []ExpectedEdge[int]{
				SeedEdgeWithValue(0, "b", 3),
			},
		},
		{
			desc: "Happy case #8 - Directory like keys",
			actions: []TreeAction[int]{
				{Kind: InsertAction, Key: []byte("root/fileA"), Value: 0},
				{Kind: InsertAction, Key: []byte("root/dir3/fileA"), Value: 1},
				{Kind: InsertAction, Key: []byte("root/dir2/fileA"), Value: 2},
				{Kind: InsertAction, Key: []byte("root/dir1/fileA"), Value: 6},
				{Kind: InsertAction, Key: []byte("root/dir1/fileB"), Value: 7},
				{Kind: InsertAction, Key: []byte("root/dir2/dir3/fileA"), Value: 3},
				{Kind: InsertAction, Key: []byte("root/dir2/dir3/fileB"), Value: 4},
			},
			expectedPreorder: []ExpectedEdge[int]{
				SeedEdge[int](0, "root/"),
				SeedEdge[int](1, "dir"),
				SeedEdge[int](2, "1/file"),
				SeedEdgeWithValue(3, "A", 6),
				SeedEdgeWithValue(3, "B", 7),
				SeedEdge[int](2, "2/"),
				SeedEdge[int](3, "dir3/file"),
				SeedEdgeWithValue(4, "A", 3),
				SeedEdgeWithValue(4, "B", 4),
				SeedEdgeWithValue(3, "fileA", 2),
				SeedEdgeWithValue(2, "3/fileA", 1),
				SeedEdgeWithValue(1, "fileA", 0),
			},
		},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			root := NewNode[byte, int]()
			applyActions(t, root, tc.actions, tc.compact, &Stats{})
			PreorderTraverseAndValidate(t, root, tc.expectedPreorder)
		})
	}
}

func Test_Insert_returnsPreviousValue(t *testing.T) {
	root := NewNode[byte, string]()
	stats := &Stats{}

	old, had := Insert(root, []byte("a"), "first", stats)
	assert.False(t, had)
	assert.Empty(t, old)

	old, had = Insert(root, []byte("a"), "second", stats)
	assert.True(t, had)
	assert.Equal(t, "first", old)

	v, ok := Get(root, []byte("a"), stats)
	require.True(t, ok)
	assert.Equal(t, "second", v)

	assert.Equal(t, int64(1), stats.Inserts.Load())
	assert.Equal(t, int64(1), stats.Updates.Load())
	assert.Equal(t, int64(1), stats.Hits.Load())
}

func Test_Insert_doesNotAliasCallerKey(t *testing.T) {
	root := NewNode[byte, int]()
	key := []byte("abc")
	Insert(root, key, 1, &Stats{})

	key[0] = 'x'

	v, ok := Get(root, []byte("abc"), &Stats{})
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = Get(root, []byte("xbc"), &Stats{})
	assert.False(t, ok)
}

func Test_Get(t *testing.T) {
	root := NewNode[byte, int]()
	stats := &Stats{}
	Insert(root, []byte("a"), 0, stats)
	Insert(root, []byte("ac"), 1, stats)
	Insert(root, []byte("apple"), 2, stats)

	type param struct {
		desc     string
		key      string
		expected int
		found    bool
	}

	testList := []param{
		{desc: "exact key on an edge end", key: "a", expected: 0, found: true},
		{desc: "nested key", key: "ac", expected: 1, found: true},
		{desc: "long key", key: "apple", expected: 2, found: true},
		{desc: "no edge for the first component", key: "c", found: false},
		{desc: "key ending inside an edge label", key: "app", found: false},
		{desc: "key diverging inside an edge label", key: "apply", found: false},
		{desc: "key longer than any stored key", key: "apples", found: false},
		{desc: "empty key is absent until inserted", key: "", found: false},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			v, ok := Get(root, []byte(tc.key), stats)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func Test_EmptyKey_isStoredAtRoot(t *testing.T) {
	root := NewNode[byte, int]()
	stats := &Stats{}

	Insert(root, nil, 42, stats)
	assert.Equal(t, 0, root.EdgesLen())
	assert.False(t, root.IsEmpty())

	v, ok := Get(root, []byte{}, stats)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = Remove(root, nil, false, stats)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, root.IsEmpty())
}

func Test_Remove_missingKeys(t *testing.T) {
	root := NewNode[byte, int]()
	stats := &Stats{}
	Insert(root, []byte("abc"), 0, stats)
	Insert(root, []byte("abd"), 1, stats)

	for _, key := range []string{"", "a", "ab", "abcd", "x", "abx"} {
		_, ok := Remove(root, []byte(key), false, stats)
		assert.False(t, ok, "key %q must not be removable", key)
	}

	assert.Equal(t, int64(0), stats.Removes.Load())
	assert.Equal(t, int64(0), stats.Prunes.Load())
	ValidateInvariants(t, root)
}

func Test_Remove_prunesAndCounts(t *testing.T) {
	root := NewNode[byte, int]()
	stats := &Stats{}
	for i, key := range []string{"abc", "ab", "a"} {
		Insert(root, []byte(key), i, stats)
	}

	for _, key := range []string{"ab", "a", "abc"} {
		_, ok := Remove(root, []byte(key), false, stats)
		require.True(t, ok)
		ValidateInvariants(t, root)
	}

	assert.True(t, root.IsEmpty())
	assert.Equal(t, int64(3), stats.Removes.Load())
	assert.Equal(t, int64(3), stats.Prunes.Load())
	assert.Equal(t, int64(2), stats.Splits.Load())
}

func Test_Locate(t *testing.T) {
	root := NewNode[byte, int]()
	stats := &Stats{}
	Insert(root, []byte("apple"), 0, stats)
	Insert(root, []byte("banana"), 1, stats)
	Insert(root, []byte("band"), 2, stats)

	type param struct {
		desc         string
		prefix       string
		mode         FindMode
		found        bool
		expectedPath string
	}

	testList := []param{
		{desc: "empty prefix locates the root", prefix: "", mode: FindStrict, found: true, expectedPath: ""},
		{desc: "prefix ending on a node", prefix: "ban", mode: FindStrict, found: true, expectedPath: "ban"},
		{desc: "relaxed - prefix ending inside an edge", prefix: "ap", mode: FindRelaxed, found: true, expectedPath: "apple"},
		{desc: "strict - prefix ending inside an edge", prefix: "ap", mode: FindStrict, found: false},
		{desc: "relaxed - nested prefix ending inside an edge", prefix: "bana", mode: FindRelaxed, found: true, expectedPath: "banana"},
		{desc: "relaxed - diverging prefix", prefix: "apx", mode: FindRelaxed, found: false},
		{desc: "relaxed - prefix longer than any key", prefix: "apples", mode: FindRelaxed, found: false},
		{desc: "unknown first component", prefix: "c", mode: FindRelaxed, found: false},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			node, path, ok := Locate(root, []byte(tc.prefix), tc.mode)
			require.Equal(t, tc.found, ok)
			if !tc.found {
				assert.Nil(t, node)
				return
			}
			assert.NotNil(t, node)
			assert.Equal(t, tc.expectedPath, string(path))
		})
	}
}

func Test_LongestPrefix(t *testing.T) {
	root := NewNode[byte, string]()
	stats := &Stats{}
	for _, key := range []string{"foo", "foobar", "foobarbaz", "zip"} {
		Insert(root, []byte(key), key, stats)
	}

	type param struct {
		desc        string
		key         string
		found       bool
		expectedKey string
	}

	testList := []param{
		{desc: "exact key", key: "foobar", found: true, expectedKey: "foobar"},
		{desc: "between two stored keys", key: "foobarb", found: true, expectedKey: "foobar"},
		{desc: "longer than every stored key", key: "foobarbazqux", found: true, expectedKey: "foobarbaz"},
		{desc: "shorter than every stored key", key: "fo", found: false},
		{desc: "unrelated key", key: "abc", found: false},
		{desc: "empty key", key: "", found: false},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			k, v, ok := LongestPrefix(root, []byte(tc.key))
			require.Equal(t, tc.found, ok)
			if ok {
				assert.Equal(t, tc.expectedKey, string(k))
				assert.Equal(t, tc.expectedKey, v)
			}
		})
	}

	Insert(root, nil, "<empty>", stats)
	k, v, ok := LongestPrefix(root, []byte("abc"))
	require.True(t, ok)
	assert.Empty(t, k)
	assert.Equal(t, "<empty>", v)
}
