// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phylo implements a rooted phylogenetic tree
// with branch lengths.
//
// Each node keeps two names:
// the name currently displayed,
// and the original name,
// stamped once after the tree is read,
// that is used as the key for renamed taxa
// so a rename survives any change of topology.
package phylo

import (
	"math"
	"slices"
)

// A Node is a node of a rooted phylogenetic tree.
// Children are owned by its parent,
// and their order is preserved by all operations.
type Node struct {
	// Name is the name currently displayed.
	Name string

	// Original is the name of the node
	// as found when the tree was read.
	Original string

	// Length is the length of the branch
	// that connects the node with its parent.
	Length float64

	Children []*Node
}

// IsLeaf returns true if the node is a terminal.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Len returns the branch length of the node.
// Non-finite values are returned as 0.
func (n *Node) Len() float64 {
	if math.IsNaN(n.Length) || math.IsInf(n.Length, 0) {
		return 0
	}
	return n.Length
}

// Clone returns a deep copy of a tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Name:     n.Name,
		Original: n.Original,
		Length:   n.Length,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, 0, len(n.Children))
		for _, d := range n.Children {
			c.Children = append(c.Children, d.Clone())
		}
	}
	return c
}

// Walk visits the tree in pre-order.
// If fn returns false,
// the descendants of the node are not visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, d := range n.Children {
		d.Walk(fn)
	}
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	var sz int
	n.Walk(func(*Node) bool {
		sz++
		return true
	})
	return sz
}

// Leaves returns the terminals of the tree
// in left to right order.
func (n *Node) Leaves() []*Node {
	var ls []*Node
	n.Walk(func(d *Node) bool {
		if d.IsLeaf() {
			ls = append(ls, d)
		}
		return true
	})
	return ls
}

// TipNames returns the displayed names of the terminals,
// sorted alphabetically.
// Unnamed terminals are ignored.
func (n *Node) TipNames() []string {
	var names []string
	for _, l := range n.Leaves() {
		if l.Name == "" {
			continue
		}
		names = append(names, l.Name)
	}
	slices.Sort(names)
	return names
}

// FindTip returns the first terminal
// (in pre-order)
// with the indicated displayed name.
func (n *Node) FindTip(name string) *Node {
	var tip *Node
	n.Walk(func(d *Node) bool {
		if tip != nil {
			return false
		}
		if d.IsLeaf() && d.Name == name {
			tip = d
		}
		return true
	})
	return tip
}

// Depth returns the largest sum of branch lengths
// between the root and any node of the tree.
// The branch length of the root is ignored.
func (n *Node) Depth() float64 {
	var max float64
	for _, d := range n.Children {
		if v := d.Len() + d.Depth(); v > max {
			max = v
		}
	}
	return max
}

// SetOriginalNames stamps the current name of each node
// as its original name.
// It should be called only once,
// just after the tree is read.
func SetOriginalNames(n *Node) {
	n.Walk(func(d *Node) bool {
		d.Original = d.Name
		return true
	})
}
