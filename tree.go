// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import "iter"

// Trie - radix tree keyed by byte sequences with values of type V.
// The zero value is not usable, create one with New.
type Trie[V any] struct {
	root *node[V]
	size int
	opts options
}

// New - creates a new instance of radix tree.
func New[V any](opts ...Option) *Trie[V] {
	t := &Trie[V]{}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Size returns the number of values stored.
func (t *Trie[V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Clear drops every node of the tree.
func (t *Trie[V]) Clear() {
	if t == nil {
		return
	}
	t.root, t.size = nil, 0
}

// Search returns the value stored at exactly key.
func (t *Trie[V]) Search(key Key) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	n := t.find(key)
	if n == nil || !n.hasValue {
		return zero, false
	}
	return n.value, true
}

// Returns the node whose full path equals key, or nil if there is none.
// Never splits: any mismatch inside a prefix means not found.
func (t *Trie[V]) find(key []byte) *node[V] {
	current := t.root
	for current != nil {
		matched := current.prefixMismatch(key)
		if matched != len(current.prefix) {
			return nil
		}
		key = key[matched:]
		if len(key) == 0 {
			return current
		}
		current = current.findChild(key[0])
	}
	return nil
}

// Insert stores value at key, overwriting any previous value.
// It reports true unless the trie is nil.
func (t *Trie[V]) Insert(key Key, value V) bool {
	if t == nil {
		return false
	}
	return t.insertHelper(key, value, true)
}

// TryInsert stores value at key unless key already holds a value,
// in which case the tree is left untouched and false is returned.
func (t *Trie[V]) TryInsert(key Key, value V) bool {
	if t == nil {
		return false
	}
	return t.insertHelper(key, value, false)
}

// Walks the tree until an insertion point is found.
// There are four methods of insertion:
//
// If the tree is empty, the root is created spanning the whole key.
//
// If the key ends exactly at the current node, the value is set there
// (or overwritten, when allowed).
//
// If there is no child for the next key byte, a new leaf holding the rest
// of the key is added under the current node.
//
// If the key diverges partway through the current node's prefix, the node
// is split at the divergence point. Either the split node takes the value
// (the key ended there), or it becomes a branch with the displaced tail and
// a new leaf as children.
func (t *Trie[V]) insertHelper(key []byte, value V, overwrite bool) bool {
	if t.root == nil {
		t.root = newLeafNode(key, value)
		t.size++
		return true
	}

	current := t.root
	for {
		matched := current.prefixMismatch(key)
		key = key[matched:]

		// The key differs from the compressed path.
		if matched < len(current.prefix) {
			current.split(matched)
			if len(key) == 0 {
				current.value, current.hasValue = value, true
			} else {
				// First bytes differ: the mismatch happened right there.
				current.addChild(newLeafNode(key, value))
			}
			t.size++
			return true
		}

		if len(key) == 0 {
			if current.hasValue {
				if !overwrite {
					return false
				}
				current.value = value
				return true
			}
			current.value, current.hasValue = value, true
			t.size++
			return true
		}

		next := current.findChild(key[0])
		if next == nil {
			current.addChild(newLeafNode(key, value))
			t.size++
			return true
		}
		current = next
	}
}

// Delete removes the value stored at exactly key and returns it.
//
// Nodes left with neither a value nor children are pruned up the path,
// so every remaining leaf holds a value. With WithCompaction, a valueless
// node left with one child is also merged into it.
func (t *Trie[V]) Delete(key Key) (V, bool) {
	var zero V
	if t == nil || t.root == nil {
		return zero, false
	}

	var path []frame[V]
	current := t.root
	for {
		matched := current.prefixMismatch(key)
		if matched != len(current.prefix) {
			return zero, false
		}
		key = key[matched:]
		if len(key) == 0 {
			break
		}
		i, ok := current.index(key[0])
		if !ok {
			return zero, false
		}
		path = append(path, frame[V]{node: current, index: i})
		current = current.children[i]
	}

	if !current.hasValue {
		return zero, false
	}
	value := current.value
	current.clearValue()
	t.size--
	t.prune(current, path)
	return value, true
}

// prune removes empty nodes starting at n, climbing path toward the root.
func (t *Trie[V]) prune(n *node[V], path []frame[V]) {
	for n.isLeaf() && !n.hasValue {
		if len(path) == 0 {
			t.root = nil
			return
		}
		parent := path[len(path)-1]
		path = path[:len(path)-1]
		parent.node.removeChild(parent.index)
		n = parent.node
	}
	if t.opts.compact && n.redundant() {
		n.absorb()
	}
}

// Minimum returns the smallest key in byte order with its value.
func (t *Trie[V]) Minimum() (Key, V, bool) {
	var zero V
	if t == nil || t.root == nil {
		return nil, zero, false
	}
	key, n := t.root.minimum([]byte{})
	return key, n.value, true
}

// Maximum returns the largest key in byte order with its value.
func (t *Trie[V]) Maximum() (Key, V, bool) {
	var zero V
	if t == nil || t.root == nil {
		return nil, zero, false
	}
	key, n := t.root.maximum([]byte{})
	return key, n.value, true
}

// Each walks every node in pre-order, smallest first byte first.
// options select value holders (TraverseValues), branches
// (TraverseBranches), or both (TraverseAll, the default).
func (t *Trie[V]) Each(callback Callback[V], options ...int) {
	if t == nil || callback == nil {
		return
	}
	t.eachHelper(t.root, callback, traverseOptions(options...))
}

// Recursive helper for iterating over the tree.
func (t *Trie[V]) eachHelper(current *node[V], callback Callback[V], opts int) {
	// Bail early if there's no node to iterate over
	if current == nil {
		return
	}

	if current.hasValue && opts&TraverseValues != 0 || !current.hasValue && opts&TraverseBranches != 0 {
		callback(current)
	}

	for _, child := range current.children {
		t.eachHelper(child, callback, opts)
	}
}

// All returns an iterator over all key/value pairs in ascending key order.
// Keys handed to the loop body are fresh copies.
func (t *Trie[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Trie[V]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in ascending key order.
func (t *Trie[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
