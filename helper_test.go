// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole tree and fails the test if any structural
// rule is broken. It returns the number of value holders found.
func checkInvariants[V any](t testing.TB, tree *Trie[V]) int {
	t.Helper()
	if tree.root == nil {
		require.Zero(t, tree.size, "empty tree must have size 0")
		return 0
	}
	values := checkNode(t, tree.root, true, tree.opts.compact)
	require.Equal(t, values, tree.size, "size must match value holders")
	return values
}

func checkNode[V any](t testing.TB, n *node[V], root, compact bool) int {
	t.Helper()
	if !root {
		require.NotEmpty(t, n.prefix, "only the root may have an empty range")
	}
	require.Len(t, n.keys, len(n.children))
	if !n.hasValue {
		require.NotEmpty(t, n.children, "valueless node %q must have children", n.prefix)
		if compact {
			require.Greater(t, len(n.children), 1, "compacted tree keeps redundant node %q", n.prefix)
		}
	}

	values := 0
	if n.hasValue {
		values++
	}
	for i, child := range n.children {
		require.Equal(t, n.keys[i], child.prefix[0], "child key must be its first byte")
		if i > 0 {
			require.Less(t, n.keys[i-1], n.keys[i], "children must be sorted and distinct")
		}
		values += checkNode(t, child, false, compact)
	}
	return values
}

func sortedKeys(keys [][]byte) [][]byte {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, bytes.Compare)
	return slices.CompactFunc(sorted, bytes.Equal)
}

func collectKeys[V any](tree *Trie[V]) [][]byte {
	var keys [][]byte
	for k := range tree.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func childRanges[V any](n *node[V]) []string {
	ranges := make([]string, 0, len(n.children))
	for _, child := range n.children {
		ranges = append(ranges, string(child.prefix))
	}
	return ranges
}
