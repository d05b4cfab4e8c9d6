// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/phylo"
	"github.com/js-arias/phytree/timecal"
)

// Tree reads the tree file
// as defined in a project.
//
// Files with the extension .tab or .tsv
// are read as collections of time calibrated trees,
// and the first tree of the collection is returned.
// Any other file is read as a Newick or NEXUS file.
func (p *Project) Tree() (*phylo.Node, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadTree(f, name)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return t, nil
}

// ReadTree reads a tree from a reader.
// The name is used to detect
// if the content is a collection of time calibrated trees.
func ReadTree(r io.Reader, name string) (*phylo.Node, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tab", ".tsv":
		return timecal.ReadTSV(r, "")
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newick.Read(string(b))
}
