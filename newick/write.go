// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/phytree/phylo"
)

// Format returns a tree as a Newick string.
// Zero branch lengths are omitted.
func Format(t *phylo.Node) string {
	var b strings.Builder
	writeNode(&b, t)
	b.WriteByte(';')
	return b.String()
}

// Write writes a tree in Newick format,
// followed by a new line.
func Write(w io.Writer, t *phylo.Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, t)
	bw.WriteString(";\n")
	return bw.Flush()
}

type stringWriter interface {
	WriteByte(c byte) error
	WriteString(s string) (int, error)
}

func writeNode(w stringWriter, n *phylo.Node) {
	if len(n.Children) > 0 {
		w.WriteByte('(')
		for i, d := range n.Children {
			if i > 0 {
				w.WriteByte(',')
			}
			writeNode(w, d)
		}
		w.WriteByte(')')
	}
	w.WriteString(quoteName(n.Name))
	if l := n.Len(); l != 0 {
		w.WriteByte(':')
		w.WriteString(strconv.FormatFloat(l, 'g', -1, 64))
	}
}

// QuoteName returns a name
// quoted if it has a character
// with special meaning in Newick.
func quoteName(name string) string {
	if name == "" {
		return ""
	}
	if !strings.ContainsAny(name, "()[]':;,") && strings.TrimSpace(name) == name {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
