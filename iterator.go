// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

// A parent on the walk, with the position of the child being visited.
type frame[V any] struct {
	node  *node[V]
	index int
}

// Iterator - depth-first walk over the values of a Trie in ascending key
// order. It holds live references into the tree: any mutation of the trie
// invalidates it, and the next calls may skip or repeat entries.
//
//	it := t.Iterator()
//	for it.Next() {
//		fmt.Println(it.Key(), it.Value())
//	}
type Iterator[V any] struct {
	trie    *Trie[V]
	stack   []frame[V]
	current *node[V]
	started bool
}

// Iterator returns a new iterator positioned before the first entry.
func (t *Trie[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{trie: t}
}

// Next advances to the next node holding a value and reports whether there
// is one.
func (it *Iterator[V]) Next() bool {
	for it.advance() {
		if it.current.hasValue {
			return true
		}
	}
	return false
}

// Key returns a copy of the full key of the current entry, rebuilt from the
// ranges on the ancestor stack and the current node.
func (it *Iterator[V]) Key() Key {
	if it.current == nil {
		return nil
	}
	size := len(it.current.prefix)
	for _, f := range it.stack {
		size += len(f.node.prefix)
	}
	key := make([]byte, 0, size)
	for _, f := range it.stack {
		key = append(key, f.node.prefix...)
	}
	return append(key, it.current.prefix...)
}

// Value returns the value of the current entry.
func (it *Iterator[V]) Value() V {
	if it.current == nil {
		var zero V
		return zero
	}
	return it.current.value
}

// Moves one node further in pre-order. Returns false once the walk is over.
func (it *Iterator[V]) advance() bool {
	if !it.started {
		it.started = true
		if it.trie == nil {
			return false
		}
		it.current = it.trie.root
		return it.current != nil
	}
	if it.current == nil {
		return false
	}

	// Go to the first child.
	if !it.current.isLeaf() {
		it.stack = append(it.stack, frame[V]{node: it.current, index: 0})
		it.current = it.current.children[0]
		return true
	}

	// Back toward the root, to the next unvisited sibling on the way.
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		parent := it.stack[top]
		it.stack = it.stack[:top]

		parent.index++
		if parent.index < len(parent.node.children) {
			it.stack = append(it.stack, parent)
			it.current = parent.node.children[parent.index]
			return true
		}
	}

	it.current = nil
	return false
}
