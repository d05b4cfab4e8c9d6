// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package session implements the state of a tree view:
// the tree as it was read,
// the tree currently displayed,
// the renamed taxa,
// and the last applied rooting.
//
// The displayed tree is never modified.
// Each operation builds a new tree
// from a copy of the tree as it was read,
// and replaces the displayed tree
// only if the operation succeeds.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/js-arias/phytree/layout"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/phylo"
	"github.com/js-arias/phytree/reroot"
)

// MidpointRooting is the rooting identifier
// of a tree rooted at its midpoint.
const MidpointRooting = "@midpoint"

// ErrNoTree is returned when a tree description is empty.
var ErrNoTree = errors.New("no tree")

// ErrDuplicateName is returned when a new name
// is already used by another terminal.
var ErrDuplicateName = errors.New("duplicate name")

// A Session is the state of a tree view.
type Session struct {
	original *phylo.Node
	current  *phylo.Node
	renames  phylo.Renames

	// rooting is either empty,
	// the original name of a terminal,
	// or MidpointRooting.
	rooting string
}

// New creates a new session from a tree description
// in Newick or NEXUS format.
func New(raw string) (*Session, error) {
	t, err := newick.Read(raw)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNoTree
	}
	return FromTree(t), nil
}

// FromTree creates a new session from a tree.
// The tree is copied,
// so it can be modified after the call.
// If the original names of the tree are not set,
// they will be set from the current names.
func FromTree(t *phylo.Node) *Session {
	orig := t.Clone()
	stamped := false
	orig.Walk(func(n *phylo.Node) bool {
		if n.Original != "" {
			stamped = true
			return false
		}
		return true
	})
	if !stamped {
		phylo.SetOriginalNames(orig)
	}

	return &Session{
		original: orig,
		current:  orig.Clone(),
		renames:  make(phylo.Renames),
	}
}

// Current returns the tree currently displayed.
// The returned tree must not be modified.
func (s *Session) Current() *phylo.Node {
	return s.current
}

// Original returns the tree as it was read.
// The returned tree must not be modified.
func (s *Session) Original() *phylo.Node {
	return s.original
}

// Renames returns a copy of the renamed taxa.
func (s *Session) Renames() phylo.Renames {
	return s.renames.Clone()
}

// Rooting returns the identifier of the last applied rooting.
func (s *Session) Rooting() string {
	return s.rooting
}

// TipNames returns the displayed names of the terminals
// of the current tree.
func (s *Session) TipNames() []string {
	return s.current.TipNames()
}

// Layout returns the layout of the current tree.
func (s *Session) Layout(o layout.Options) layout.Result {
	return layout.Layout(s.current, o)
}

// Derive builds a new tree from a copy of the original tree
// with a set of renamed taxa,
// and transforms it using fn.
// If the transformation succeeds,
// the new tree becomes the current tree.
func (s *Session) derive(r phylo.Renames, fn func(*phylo.Node) (*phylo.Node, error)) error {
	t := s.original.Clone()
	phylo.ApplyRenames(t, r)
	t, err := fn(t)
	if err != nil {
		return err
	}
	s.current = t
	s.renames = r
	return nil
}

// Reset sets the current tree as a copy of the original tree
// with a set of renamed taxa
// and the original rooting.
func (s *Session) reset(r phylo.Renames) {
	t := s.original.Clone()
	phylo.ApplyRenames(t, r)
	s.current = t
	s.renames = r
	s.rooting = ""
}

// Apply applies a rooting identifier.
func (s *Session) apply(r phylo.Renames, rooting string) error {
	switch rooting {
	case "":
		s.reset(r)
		return nil
	case MidpointRooting:
		return s.derive(r, reroot.Midpoint)
	}

	return s.derive(r, func(t *phylo.Node) (*phylo.Node, error) {
		var tip *phylo.Node
		for _, l := range t.Leaves() {
			if l.Original == rooting {
				tip = l
				break
			}
		}
		if tip == nil {
			return nil, fmt.Errorf("%w: %q", reroot.ErrTipNotFound, rooting)
		}
		return reroot.AtTip(t, tip)
	})
}

// RootByTip roots the tree at a terminal,
// identified by its displayed name.
func (s *Session) RootByTip(name string) error {
	tip := s.current.FindTip(name)
	if tip == nil {
		return fmt.Errorf("%w: %q", reroot.ErrTipNotFound, name)
	}
	id := tip.Original
	if id == "" {
		return fmt.Errorf("%w: %q: terminal without original name", reroot.ErrTipNotFound, name)
	}

	if err := s.apply(s.renames, id); err != nil {
		return err
	}
	s.rooting = id
	return nil
}

// Midpoint roots the tree at its midpoint.
// If the tree is already rooted at its midpoint,
// the original rooting is restored.
func (s *Session) Midpoint() error {
	if s.rooting == MidpointRooting {
		return s.Unroot()
	}

	err := s.apply(s.renames, MidpointRooting)
	if errors.Is(err, reroot.ErrMidpointUndefined) {
		s.reset(s.renames)
		return err
	}
	if err != nil {
		return err
	}
	s.rooting = MidpointRooting
	return nil
}

// Unroot restores the rooting of the original tree.
func (s *Session) Unroot() error {
	s.reset(s.renames)
	return nil
}

// Rename sets the displayed name of a terminal,
// identified by its current displayed name.
// If the new name is empty,
// or it is the original name of the terminal,
// the original name is restored.
func (s *Session) Rename(tip, name string) error {
	t := s.current.FindTip(tip)
	if t == nil {
		return fmt.Errorf("%w: %q", reroot.ErrTipNotFound, tip)
	}
	if t.Original == "" {
		return fmt.Errorf("%w: %q: terminal without original name", reroot.ErrTipNotFound, tip)
	}
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = t.Original
	}

	for _, l := range s.current.Leaves() {
		if l == t {
			continue
		}
		if l.Name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	r := s.renames.Clone()
	if name == t.Original {
		delete(r, t.Original)
	} else {
		r[t.Original] = name
	}
	return s.apply(r, s.rooting)
}

// ResetNames restores the original names
// of all terminals.
func (s *Session) ResetNames() error {
	return s.apply(make(phylo.Renames), s.rooting)
}
