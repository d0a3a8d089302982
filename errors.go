// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import "errors"

// Errors returned by the dictionary adapters. The Trie itself never fails:
// it reports absence through its boolean results.
var (
	ErrKeyNotFound     = errors.New("radix: key not found")
	ErrDuplicateKey    = errors.New("radix: duplicate key")
	ErrInvalidArgument = errors.New("radix: invalid argument")
)
