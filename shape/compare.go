package shape

import (
	"cmp"
	"strings"
)

// Equal reports whether a and b have the same shape: the same child names
// with recursively equal subtrees. Node identity, parent links and the
// nodes' own names play no part.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two shapes. The result is 0 if
// a == b, -1 if a < b and +1 if a > b. Children compare in sorted name
// order, so insertion order is irrelevant.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	aNames := a.Names()
	bNames := b.Names()
	n := min(len(aNames), len(bNames))
	for i := 0; i < n; i++ {
		if c := strings.Compare(aNames[i], bNames[i]); c != 0 {
			return c
		}
		if c := Compare(a.Children[aNames[i]], b.Children[bNames[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aNames), len(bNames))
}
