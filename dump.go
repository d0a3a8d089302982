// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a text representation of the tree to w.
func (t *Trie[V]) Dump(w io.Writer) {
	if t == nil {
		t = &Trie[V]{}
	}
	t.dump(w, t.root, 0)
	fmt.Fprintln(w)
}

func (t *Trie[V]) dump(w io.Writer, n *node[V], depth int) {
	if n == nil {
		fmt.Fprintf(w, "EMPTY\n")
		return
	}
	if n.hasValue {
		fmt.Fprintf(w, "%s %s Range: %q Value: %+v\n", dumpPre(depth), n.Kind(), n.prefix, n.value)
	} else {
		fmt.Fprintf(w, "%s %s Range: %q\n", dumpPre(depth), n.Kind(), n.prefix)
	}
	for _, child := range n.children {
		t.dump(w, child, depth+1)
	}
}

// Calculates the indentation.
func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__")
	return b.String()
}
