// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"bytes"
	"slices"
)

// Defines a single radix node and its attributes.
//
// keys[i] is always children[i].prefix[0]; both slices are sorted by that
// byte and no two children share it.
type node[V any] struct {
	prefix   []byte
	keys     []byte
	children []*node[V]
	value    V
	hasValue bool
}

func newLeafNode[V any](key []byte, value V) *node[V] {
	return &node[V]{
		prefix:   bytes.Clone(key),
		value:    value,
		hasValue: true,
	}
}

func (n *node[V]) Kind() Kind {
	switch {
	case !n.hasValue:
		return Branch
	case len(n.children) == 0:
		return Leaf
	}
	return Inner
}

func (n *node[V]) Range() []byte { return n.prefix }

// Returns the value of the given node, and whether it holds one.
func (n *node[V]) Value() (V, bool) { return n.value, n.hasValue }

func (n *node[V]) Children() int { return len(n.children) }

// Returns whether or not this particular node has no children.
func (n *node[V]) isLeaf() bool { return len(n.children) == 0 }

// Returns the number of leading bytes shared by the node prefix and the key.
func (n *node[V]) prefixMismatch(key []byte) int {
	limit := min(len(n.prefix), len(key))
	i := 0
	for ; i < limit; i++ {
		if n.prefix[i] != key[i] {
			return i
		}
	}
	return i
}

// index returns the position of the child whose range starts with key and
// whether it exists. When it does not, the position is where it would go.
func (n *node[V]) index(key byte) (int, bool) {
	return slices.BinarySearch(n.keys, key)
}

// findChild returns the child that matches the passed in key, or nil if not present.
func (n *node[V]) findChild(key byte) *node[V] {
	if i, ok := n.index(key); ok {
		return n.children[i]
	}
	return nil
}

// addChild adds the passed in node to the current node's children keeping them sorted.
// The caller guarantees that no child starts with the same byte.
func (n *node[V]) addChild(child *node[V]) {
	key := child.prefix[0]
	i, _ := n.index(key)
	n.keys = slices.Insert(n.keys, i, key)
	n.children = slices.Insert(n.children, i, child)
}

// removeChild removes the child at position i.
func (n *node[V]) removeChild(i int) {
	n.keys = slices.Delete(n.keys, i, i+1)
	n.children = slices.Delete(n.children, i, i+1)
}

// split cuts the node prefix at offset at. The tail of the prefix, the
// children and the value move into a new node which becomes the single child
// of n. n is left without a value.
func (n *node[V]) split(at int) *node[V] {
	displaced := &node[V]{
		prefix:   bytes.Clone(n.prefix[at:]),
		keys:     n.keys,
		children: n.children,
		value:    n.value,
		hasValue: n.hasValue,
	}
	n.prefix = bytes.Clone(n.prefix[:at])
	n.keys = []byte{displaced.prefix[0]}
	n.children = []*node[V]{displaced}
	n.clearValue()
	return displaced
}

// absorb merges the only child of a valueless node into it.
func (n *node[V]) absorb() {
	child := n.children[0]
	prefix := make([]byte, 0, len(n.prefix)+len(child.prefix))
	prefix = append(prefix, n.prefix...)
	n.prefix = append(prefix, child.prefix...)
	n.keys, n.children = child.keys, child.children
	n.value, n.hasValue = child.value, child.hasValue
}

func (n *node[V]) clearValue() {
	var zero V
	n.value, n.hasValue = zero, false
}

// Returns whether the node is a valueless branch that has a single child left.
func (n *node[V]) redundant() bool {
	return !n.hasValue && len(n.children) == 1
}

// Returns the smallest key stored under n, appended to pre.
// Pre-order puts a value holder before its descendants, so the walk stops at
// the first node with a value.
func (n *node[V]) minimum(pre []byte) ([]byte, *node[V]) {
	for {
		pre = append(pre, n.prefix...)
		if n.hasValue || n.isLeaf() {
			return pre, n
		}
		n = n.children[0]
	}
}

// Returns the largest key stored under n, appended to pre.
// The biggest key always lives in the rightmost leaf.
func (n *node[V]) maximum(pre []byte) ([]byte, *node[V]) {
	for {
		pre = append(pre, n.prefix...)
		if n.isLeaf() {
			return pre, n
		}
		n = n.children[len(n.children)-1]
	}
}
