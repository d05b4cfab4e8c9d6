// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import "slices"

// Renames is a map of original names to displayed names.
type Renames map[string]string

// Clone returns a copy of the map.
func (r Renames) Clone() Renames {
	c := make(Renames, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Originals returns the original names with a new name,
// sorted alphabetically.
func (r Renames) Originals() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ApplyRenames sets the displayed name of each node
// with a mapped original name.
// Nodes without a mapping are left untouched.
func ApplyRenames(n *Node, r Renames) {
	if len(r) == 0 {
		return
	}
	n.Walk(func(d *Node) bool {
		if d.Original == "" {
			return true
		}
		if nm, ok := r[d.Original]; ok {
			d.Name = nm
		}
		return true
	})
}
