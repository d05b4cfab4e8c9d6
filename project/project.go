// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of phytree project files.
//
// A phytree project is a tab-delimited file (TSV)
// used to store the paths of the tree,
// the state store,
// and the drawing configuration
// used by phytree commands.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/js-arias/phytree/render"
	"github.com/js-arias/phytree/store"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the phylogenetic tree,
	// in Newick or NEXUS format,
	// or a collection of time calibrated trees in TSV format.
	Tree Dataset = "tree"

	// Location of the store used to keep
	// the renamed taxa and the rooting of the tree.
	// Without a store,
	// the state is kept in memory.
	Store Dataset = "store"

	// File for the drawing configuration,
	// in TOML format.
	// Without a configuration file,
	// the default configuration is used.
	Draw Dataset = "draw"
)

// ErrUnknownDataset is returned when a project file
// uses a dataset keyword that is not a valid dataset type.
var ErrUnknownDataset = errors.New("unknown dataset")

// ParseDataset returns the dataset type of a keyword.
// Keywords are case insensitive.
func ParseDataset(s string) (Dataset, error) {
	set := Dataset(strings.ToLower(strings.TrimSpace(s)))
	switch set {
	case Tree, Store, Draw:
		return set, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDataset, s)
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		paths: make(map[Dataset]string),
	}
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Store opens the store
// as defined in a project.
// If no store is defined,
// a store in memory is returned.
func (p *Project) Store() (store.Store, error) {
	loc := p.paths[Store]
	st, err := store.Open(loc)
	if err != nil {
		return nil, fmt.Errorf("on store %q: %v", loc, err)
	}
	return st, nil
}

// DrawConfig reads the drawing configuration
// as defined in a project.
// If no configuration is defined,
// the default configuration is returned.
func (p *Project) DrawConfig() (render.Config, error) {
	name := p.paths[Draw]
	if name == "" {
		return render.DefaultConfig(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return render.Config{}, err
	}
	defer f.Close()

	c, err := render.ReadConfig(f)
	if err != nil {
		return render.Config{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Rows without a path are ignored.
// If a dataset is defined more than once,
// the last definition is used.
//
// Here is an example file:
//
//	# phytree project files
//	dataset	path
//	tree	acer.nex
//	store	acer-state.db
//	draw	acer.toml
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	p.name = name
	return p, nil
}

func decode(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		path := strings.TrimSpace(row[fields["path"]])
		if path == "" {
			continue
		}
		set, err := ParseDataset(row[fields["dataset"]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: %w", ln, err)
		}
		p.paths[set] = path
	}
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.encode(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *Project) encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# phytree project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return bw.Flush()
}
