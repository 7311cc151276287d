package internal

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// findLCP returns the length of the longest common prefix of key1 and key2.
// Components are compared with cmp.Compare so that NaN matches itself, the
// same way the edge binary search orders it.
func findLCP[C Component](key1 []C, key2 []C) int {
	i := 0
	for ; i < min(len(key1), len(key2)); i++ {
		if cmp.Compare(key1[i], key2[i]) != 0 {
			break
		}
	}

	return i
}

func isExactMatch[C Component](key1 []C, key2 []C) bool {
	return len(key1) == len(key2) && findLCP(key1, key2) == len(key1)
}

// ownedKey copies a borrowed key fragment so that the tree never aliases caller memory.
func ownedKey[C Component](key []C) []C {
	return slices.Clone(key)
}

// concatKey returns a freshly allocated a+b.
func concatKey[C Component](a, b []C) []C {
	res := make([]C, 0, len(a)+len(b))
	res = append(res, a...)
	return append(res, b...)
}
