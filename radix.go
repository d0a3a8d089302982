// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package radix implements a compressed radix tree (PATRICIA trie without
// bit-level compression) keyed by arbitrary byte sequences.
//
// A Trie is not safe for concurrent use. Callers that share one between
// goroutines must serialize access themselves, e.g. with a sync.Mutex.
package radix

import "iter"

// Kind - radix tree node type.
type Kind uint8

// Types of node.
const (
	// Leaf holds a value and has no children.
	Leaf Kind = iota
	// Inner holds a value and has children.
	Inner
	// Branch is purely structural: children only, no value.
	Branch
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "LEAF"
	case Inner:
		return "INNER"
	case Branch:
		return "BRANCH"
	}
	return "UNKNOWN"
}

// Key type. Can be any sequence of bytes, including the empty one.
type Key = []byte

// Traversal options for Each.
const (
	TraverseValues   = 1
	TraverseBranches = 2
	TraverseAll      = TraverseValues | TraverseBranches
)

// Node - read only view of a tree node passed to Each callbacks.
type Node[V any] interface {
	Kind() Kind
	// Range is the fragment of the key consumed by this node.
	Range() []byte
	Value() (V, bool)
	Children() int
}

// Callback - callback function that is passed in Each.
type Callback[V any] func(node Node[V])

// Tree - delineate radix tree entity. Adapters depend on this surface only.
type Tree[V any] interface {
	Insert(key Key, value V) bool
	TryInsert(key Key, value V) bool
	Delete(key Key) (value V, deleted bool)
	Search(key Key) (value V, found bool)
	Size() int
	Clear()
	All() iter.Seq2[Key, V]
}

var _ Tree[any] = (*Trie[any])(nil)
