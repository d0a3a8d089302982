// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

type options struct {
	compact bool
}

// Option - configures a Trie created by New.
type Option func(*options)

// WithCompaction makes Delete merge a valueless node that is left with a
// single child into that child. Without it, such branch nodes stay in place
// until the trie is cleared.
func WithCompaction() Option {
	return func(o *options) {
		o.compact = true
	}
}

func traverseOptions(opts ...int) int {
	if len(opts) == 0 {
		return TraverseAll
	}
	var mask int
	for _, o := range opts {
		mask |= o
	}
	return mask & TraverseAll
}
