// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package distance implements a matrix
// of patristic distances between the terminals of a tree.
package distance

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/js-arias/phytree/phylo"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat"
)

// A Matrix is a matrix of patristic distances
// (the sum of branch lengths of the path between two terminals).
type Matrix struct {
	names []string
	idx   map[string]int
	dist  [][]float64
}

// New returns the distance matrix of the terminals of a tree.
// Terminals are identified by its displayed name,
// unnamed terminals are ignored.
// Negative branch lengths are read as zero.
func New(t *phylo.Node) *Matrix {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ids := make(map[*phylo.Node]int64)
	var next int64
	t.Walk(func(n *phylo.Node) bool {
		id := next
		next++
		ids[n] = id
		g.AddNode(simple.Node(id))
		return true
	})
	t.Walk(func(n *phylo.Node) bool {
		for _, d := range n.Children {
			w := max(d.Len(), 0)
			e := g.NewWeightedEdge(simple.Node(ids[n]), simple.Node(ids[d]), w)
			g.SetWeightedEdge(e)
		}
		return true
	})
	all := path.DijkstraAllPaths(g)

	leaves := make(map[string]*phylo.Node)
	for _, l := range t.Leaves() {
		if l.Name == "" {
			continue
		}
		if _, dup := leaves[l.Name]; dup {
			continue
		}
		leaves[l.Name] = l
	}
	m := &Matrix{
		names: make([]string, 0, len(leaves)),
		idx:   make(map[string]int, len(leaves)),
	}
	for nm := range leaves {
		m.names = append(m.names, nm)
	}
	slices.Sort(m.names)

	m.dist = make([][]float64, len(m.names))
	for i, a := range m.names {
		m.idx[a] = i
		m.dist[i] = make([]float64, len(m.names))
		for j, b := range m.names {
			if i == j {
				continue
			}
			m.dist[i][j] = all.Weight(ids[leaves[a]], ids[leaves[b]])
		}
	}
	return m
}

// Names returns the terminal names,
// in alphabetical order.
func (m *Matrix) Names() []string {
	return slices.Clone(m.names)
}

// Dist returns the distance between two terminals.
// If a terminal is not in the matrix,
// it returns NaN.
func (m *Matrix) Dist(a, b string) float64 {
	i, ok := m.idx[a]
	if !ok {
		return math.NaN()
	}
	j, ok := m.idx[b]
	if !ok {
		return math.NaN()
	}
	return m.dist[i][j]
}

// Diameter returns the pair of terminals
// with the largest distance.
func (m *Matrix) Diameter() (a, b string, d float64) {
	for i := range m.names {
		for j := i + 1; j < len(m.names); j++ {
			if m.dist[i][j] > d {
				a, b, d = m.names[i], m.names[j], m.dist[i][j]
			}
		}
	}
	return a, b, d
}

// MeanStdDev returns the mean
// and the standard deviation
// of the distances between all pairs of terminals.
func (m *Matrix) MeanStdDev() (mean, std float64) {
	var vals []float64
	for i := range m.names {
		for j := i + 1; j < len(m.names); j++ {
			vals = append(vals, m.dist[i][j])
		}
	}
	if len(vals) == 0 {
		return 0, 0
	}
	if len(vals) == 1 {
		return vals[0], 0
	}
	return stat.MeanStdDev(vals, nil)
}

// TSV writes the matrix as a TSV table
// with the fields:
//
//   - from, the name of the first terminal
//   - to, the name of the second terminal
//   - distance, the patristic distance
//
// Each pair is written only once.
func (m *Matrix) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write([]string{"from", "to", "distance"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for i, a := range m.names {
		for j := i + 1; j < len(m.names); j++ {
			row := []string{
				a,
				m.names[j],
				strconv.FormatFloat(m.dist[i][j], 'f', 6, 64),
			}
			if err := tsv.Write(row); err != nil {
				return err
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
