package go_radix_tree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Set(t *testing.T) {
	type param struct {
		desc          string
		items         []string
		remove        []string
		prefix        string
		expectedAll   []string
		expectedFound []string
	}

	testList := []param{
		{
			desc:          "the empty string is an element like any other",
			items:         []string{""},
			expectedAll:   []string{""},
			expectedFound: []string{""},
		},
		{
			desc:          "duplicates are stored once",
			items:         []string{"b", "a", "b", "c", "a"},
			prefix:        "b",
			expectedAll:   []string{"a", "b", "c"},
			expectedFound: []string{"b"},
		},
		{
			desc:          "removed elements are gone from iteration and search",
			items:         []string{"test", "team", "toast", "te"},
			remove:        []string{"team", "missing"},
			prefix:        "te",
			expectedAll:   []string{"te", "test", "toast"},
			expectedFound: []string{"te", "test"},
		},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			s := SetFrom[string, byte](slices.Values(tc.items), StringCodec{})
			assert.False(t, s.IsEmpty())

			for _, item := range tc.remove {
				assert.Equal(t, slices.Contains(tc.items, item), s.Remove(item))
			}

			assert.Equal(t, len(tc.expectedAll), s.Len())
			assert.Equal(t, tc.expectedAll, slices.Collect(s.All()))
			assert.Equal(t, tc.expectedFound, slices.Collect(s.Find(tc.prefix)))
			for _, item := range tc.expectedAll {
				assert.True(t, s.Contains(item))
			}
		})
	}
}

func Test_Set_insert(t *testing.T) {
	s := NewStringSet()
	assert.True(t, s.Insert("x"))
	assert.False(t, s.Insert("x"))
	assert.True(t, s.Insert("xy"))
	assert.False(t, s.Contains("y"))

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains("x"))

	ints := NewSliceSet[int]()
	assert.True(t, ints.Insert([]int{3, 1}))
	assert.True(t, ints.Insert([]int{2}))
	assert.Equal(t, [][]int{{2}, {3, 1}}, slices.Collect(ints.All()))
}
