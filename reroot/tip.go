// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reroot implements rerooting of phylogenetic trees,
// either at a terminal,
// or at the midpoint of the longest path between two terminals.
//
// Rerooting never changes the distance between any pair of terminals.
// Both functions modify the tree they receive,
// so callers that want to keep the source tree
// should pass a copy.
package reroot

import (
	"errors"
	"fmt"

	"github.com/js-arias/phytree/phylo"
)

// ErrTipNotFound is returned when a terminal
// is not found in the tree.
var ErrTipNotFound = errors.New("tip not found")

// ByTip reroots a tree at a terminal.
//
// The returned tree has a new root with two children:
// the terminal,
// with its own branch length,
// and the rest of the tree,
// attached with a zero length branch.
func ByTip(t *phylo.Node, name string) (*phylo.Node, error) {
	tip := t.FindTip(name)
	if tip == nil {
		return nil, fmt.Errorf("%w: %q", ErrTipNotFound, name)
	}
	return AtTip(t, tip)
}

// AtTip reroots a tree at the given terminal node,
// as ByTip does.
func AtTip(t, tip *phylo.Node) (*phylo.Node, error) {
	if !tip.IsLeaf() {
		return nil, fmt.Errorf("%w: %q is not a terminal", ErrTipNotFound, tip.Name)
	}
	if tip == t {
		return t, nil
	}
	parent := parents(t)
	anc, ok := parent[tip]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not in the tree", ErrTipNotFound, tip.Name)
	}

	// path from the terminal to the root
	path := []*phylo.Node{tip}
	for n := anc; n != nil; n = parent[n] {
		path = append(path, n)
	}

	orig := make(map[*phylo.Node]float64, len(path))
	for _, n := range path {
		orig[n] = n.Length
	}

	// flip the edges,
	// from the parent of the terminal,
	// up to the root.
	for i := 1; i < len(path)-1; i++ {
		c, p := path[i], path[i+1]
		p.Children = remove(p.Children, c)
		c.Children = append(c.Children, p)
		p.Length = orig[c]
	}

	anc.Children = remove(anc.Children, tip)
	tip.Length = orig[tip]
	anc.Length = 0

	return &phylo.Node{
		Children: []*phylo.Node{tip, anc},
	}, nil
}

// Parents returns the parent of each node in the tree.
// The root is not included.
func parents(t *phylo.Node) map[*phylo.Node]*phylo.Node {
	parent := make(map[*phylo.Node]*phylo.Node)
	t.Walk(func(n *phylo.Node) bool {
		for _, d := range n.Children {
			parent[d] = n
		}
		return true
	})
	return parent
}

func remove(ls []*phylo.Node, n *phylo.Node) []*phylo.Node {
	for i, d := range ls {
		if d == n {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}
