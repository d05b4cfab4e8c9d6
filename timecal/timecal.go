// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package timecal converts trees
// from and to time calibrated trees.
//
// In a time calibrated tree,
// node ages are stored in years,
// and branch lengths are read as million years.
package timecal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/phylo"
	"github.com/js-arias/timetree"
)

// MillionYears is used to transform ages
// into branch lengths.
const MillionYears = 1_000_000

// ErrNoTree is returned when a collection
// does not have the requested tree.
var ErrNoTree = errors.New("tree not found")

// FromTree returns a tree
// from a time calibrated tree.
// Branch lengths are in million years.
func FromTree(t *timetree.Tree) *phylo.Node {
	n := fromNode(t, t.Root())
	phylo.SetOriginalNames(n)
	return n
}

func fromNode(t *timetree.Tree, id int) *phylo.Node {
	n := &phylo.Node{
		Name: t.Taxon(id),
	}
	if p := t.Parent(id); p >= 0 {
		n.Length = float64(t.Age(p)-t.Age(id)) / MillionYears
	}
	for _, c := range t.Children(id) {
		n.Children = append(n.Children, fromNode(t, c))
	}
	return n
}

// ReadTSV reads a tree
// from a collection of time calibrated trees
// stored in a TSV file.
// If name is empty,
// the first tree of the collection will be returned.
func ReadTSV(r io.Reader, name string) (*phylo.Node, error) {
	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, err
	}
	if name == "" {
		ls := c.Names()
		if len(ls) == 0 {
			return nil, ErrNoTree
		}
		name = ls[0]
	}
	t := c.Tree(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoTree, name)
	}
	return FromTree(t), nil
}

// Collection returns a collection
// with a single time calibrated tree.
// Branch lengths of the tree are read as million years.
// If rootAge is zero,
// the age of the root will be the largest distance
// from the root to any terminal.
func Collection(t *phylo.Node, name string, rootAge float64) (*timetree.Collection, error) {
	r := strings.NewReader(newick.Format(t))
	c, err := timetree.Newick(r, name, int64(rootAge*MillionYears))
	if err != nil {
		return nil, fmt.Errorf("while building tree %q: %v", name, err)
	}
	return c, nil
}

// WriteTSV writes a tree as a time calibrated tree
// in TSV format.
func WriteTSV(w io.Writer, t *phylo.Node, name string, rootAge float64) error {
	c, err := Collection(t, name, rootAge)
	if err != nil {
		return err
	}
	return c.TSV(w)
}
