// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"iter"
	"slices"
)

// Equal - reports whether two values are the same, used by the entry based
// methods of Dict.
type Equal[V any] func(a, b V) bool

// Comparable is the Equal for comparable value types.
func Comparable[V comparable](a, b V) bool { return a == b }

// Entry - key/value pair.
type Entry[V any] struct {
	Key   Key
	Value V
}

// Dict - map style adapter over a Tree. Unlike the Tree it reports misuse
// through errors: a missing key on Get, a taken key on Add.
type Dict[V any] struct {
	tree  Tree[V]
	equal Equal[V]
}

// NewDict wraps tree. A nil tree gets a fresh Trie.
// equal is used by Contains and RemoveEntry and must not be nil.
func NewDict[V any](tree Tree[V], equal Equal[V]) *Dict[V] {
	if tree == nil {
		tree = New[V]()
	}
	return &Dict[V]{tree: tree, equal: equal}
}

// Len returns the number of entries.
func (d *Dict[V]) Len() int { return d.tree.Size() }

// Get returns the value at key or ErrKeyNotFound.
func (d *Dict[V]) Get(key Key) (V, error) {
	value, ok := d.tree.Search(key)
	if !ok {
		return value, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return value, nil
}

// Set stores value at key, replacing any previous one.
func (d *Dict[V]) Set(key Key, value V) {
	d.tree.Insert(key, value)
}

// Add stores value at key or fails with ErrDuplicateKey if key is taken.
func (d *Dict[V]) Add(key Key, value V) error {
	if !d.tree.TryInsert(key, value) {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	return nil
}

// Remove deletes key and reports whether it was present.
func (d *Dict[V]) Remove(key Key) bool {
	_, ok := d.tree.Delete(key)
	return ok
}

// ContainsKey reports whether key holds a value.
func (d *Dict[V]) ContainsKey(key Key) bool {
	_, ok := d.tree.Search(key)
	return ok
}

// Contains reports whether e.Key holds a value equal to e.Value.
func (d *Dict[V]) Contains(e Entry[V]) bool {
	value, ok := d.tree.Search(e.Key)
	return ok && d.equal(value, e.Value)
}

// RemoveEntry deletes e.Key only if it holds a value equal to e.Value.
func (d *Dict[V]) RemoveEntry(e Entry[V]) bool {
	if !d.Contains(e) {
		return false
	}
	return d.Remove(e.Key)
}

// All returns an iterator over the entries in ascending key order.
func (d *Dict[V]) All() iter.Seq2[Key, V] { return d.tree.All() }

// Keys returns all keys in ascending order.
func (d *Dict[V]) Keys() []Key {
	keys := make([]Key, 0, d.Len())
	for k := range d.tree.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values in ascending key order.
func (d *Dict[V]) Values() []V {
	values := make([]V, 0, d.Len())
	for _, v := range d.tree.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns all entries in ascending key order.
func (d *Dict[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], d.Len())
	_ = d.CopyTo(entries, 0)
	return entries
}

// CopyTo writes every entry into dst starting at index.
func (d *Dict[V]) CopyTo(dst []Entry[V], index int) error {
	if err := checkCopy(len(dst), dst == nil, index, d.Len()); err != nil {
		return err
	}
	i := index
	for k, v := range d.tree.All() {
		dst[i] = Entry[V]{Key: k, Value: v}
		i++
	}
	return nil
}

func checkCopy(length int, isNil bool, index, count int) error {
	switch {
	case isNil:
		return fmt.Errorf("%w: nil destination", ErrInvalidArgument)
	case index < 0:
		return fmt.Errorf("%w: negative index %d", ErrInvalidArgument, index)
	case index+count > length:
		return fmt.Errorf("%w: %d entries do not fit at index %d of %d", ErrInvalidArgument, count, index, length)
	}
	return nil
}

// AnyDict - untyped adapter over Dict. Keys may be []byte, string or
// iter.Seq[byte]; values must be of type V. Anything else fails with
// ErrInvalidArgument.
type AnyDict[V any] struct {
	dict *Dict[V]
}

// NewAnyDict wraps dict. A nil dict gets a fresh one without an Equal.
func NewAnyDict[V any](dict *Dict[V]) *AnyDict[V] {
	if dict == nil {
		dict = NewDict[V](nil, nil)
	}
	return &AnyDict[V]{dict: dict}
}

func toKey(key any) (Key, error) {
	switch k := key.(type) {
	case []byte:
		return k, nil
	case string:
		return Key(k), nil
	case iter.Seq[byte]:
		if k == nil {
			break
		}
		return slices.Collect(k), nil
	}
	return nil, fmt.Errorf("%w: key of type %T", ErrInvalidArgument, key)
}

func toValue[V any](value any) (V, error) {
	v, ok := value.(V)
	if !ok {
		return v, fmt.Errorf("%w: value of type %T", ErrInvalidArgument, value)
	}
	return v, nil
}

// Len returns the number of entries.
func (d *AnyDict[V]) Len() int { return d.dict.Len() }

// Get returns the value at key.
func (d *AnyDict[V]) Get(key any) (any, error) {
	k, err := toKey(key)
	if err != nil {
		return nil, err
	}
	v, err := d.dict.Get(k)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set stores value at key, replacing any previous one.
func (d *AnyDict[V]) Set(key, value any) error {
	k, err := toKey(key)
	if err != nil {
		return err
	}
	v, err := toValue[V](value)
	if err != nil {
		return err
	}
	d.dict.Set(k, v)
	return nil
}

// Add stores value at key or fails with ErrDuplicateKey if key is taken.
func (d *AnyDict[V]) Add(key, value any) error {
	k, err := toKey(key)
	if err != nil {
		return err
	}
	v, err := toValue[V](value)
	if err != nil {
		return err
	}
	return d.dict.Add(k, v)
}

// Remove deletes key. A missing key is not an error, a malformed one is.
func (d *AnyDict[V]) Remove(key any) error {
	k, err := toKey(key)
	if err != nil {
		return err
	}
	d.dict.Remove(k)
	return nil
}

// Contains reports whether key holds a value. Malformed keys are never contained.
func (d *AnyDict[V]) Contains(key any) bool {
	k, err := toKey(key)
	if err != nil {
		return false
	}
	return d.dict.ContainsKey(k)
}

// Keys returns all keys as Key values, in ascending order.
func (d *AnyDict[V]) Keys() []any {
	keys := make([]any, 0, d.Len())
	for _, k := range d.dict.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values in ascending key order.
func (d *AnyDict[V]) Values() []any {
	values := make([]any, 0, d.Len())
	for _, v := range d.dict.Values() {
		values = append(values, v)
	}
	return values
}

// CopyTo writes every entry, as an Entry[V], into dst starting at index.
func (d *AnyDict[V]) CopyTo(dst []any, index int) error {
	if err := checkCopy(len(dst), dst == nil, index, d.Len()); err != nil {
		return err
	}
	i := index
	for k, v := range d.dict.All() {
		dst[i] = Entry[V]{Key: k, Value: v}
		i++
	}
	return nil
}
