// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/phytree/layout"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/phylo"
)

func readTree(t testing.TB, s string) *phylo.Node {
	t.Helper()

	tr, err := newick.Read(s)
	if err != nil {
		t.Fatalf("unable to read tree %q: %v", s, err)
	}
	return tr
}

func TestLayout(t *testing.T) {
	tr := readTree(t, "(A:1,(B:1,C:1)X:1);")
	r := layout.Layout(tr, layout.Options{Width: 100, Spacing: 10})

	want := map[string]layout.Point{
		"":  {X: 0, Y: 7.5},
		"A": {X: 50, Y: 0},
		"X": {X: 50, Y: 15},
		"B": {X: 100, Y: 10},
		"C": {X: 100, Y: 20},
	}
	if len(r.Nodes) != len(want) {
		t.Fatalf("nodes: got %d, want %d", len(r.Nodes), len(want))
	}
	for _, p := range r.Nodes {
		if w := want[p.Node.Name]; p.Point != w {
			t.Errorf("node %q: got %v, want %v", p.Node.Name, p.Point, w)
		}
	}
	if p, ok := r.Position(tr.Children[1]); !ok || p.Depth != 1 {
		t.Errorf("position of X: got %v (%v)", p, ok)
	}

	if r.Width != 100 || r.Height != 20 || r.MaxDepth != 2 {
		t.Errorf("size: got %g x %g (depth %g), want 100 x 20 (depth 2)", r.Width, r.Height, r.MaxDepth)
	}

	if len(r.Connectors) != 4 {
		t.Fatalf("connectors: got %d, want 4", len(r.Connectors))
	}
	c := r.Connectors[2] // X to B
	wc := layout.Connector{
		Node:   tr.Children[1].Children[0],
		Length: 1,
		From:   layout.Point{X: 50, Y: 15},
		Corner: layout.Point{X: 50, Y: 10},
		To:     layout.Point{X: 100, Y: 10},
	}
	if !reflect.DeepEqual(c, wc) {
		t.Errorf("connector: got %+v, want %+v", c, wc)
	}

	var labels []string
	for _, l := range r.Labels {
		labels = append(labels, l.Text)
		if l.Leader != nil {
			t.Errorf("label %q: unexpected leader", l.Text)
		}
	}
	if !reflect.DeepEqual(labels, []string{"A", "B", "C"}) {
		t.Errorf("labels: got %v", labels)
	}
	if l := r.Labels[0]; l.X != 50+layout.LabelGap || l.Y != 0 {
		t.Errorf("label A: got %v", l.Point)
	}

	wantScale := layout.ScaleBar{
		Value:  0.4,
		Length: 20,
		Point:  layout.Point{X: 0, Y: 30},
	}
	if r.Scale != wantScale {
		t.Errorf("scale bar: got %+v, want %+v", r.Scale, wantScale)
	}
}

func TestLayoutAlignedLabels(t *testing.T) {
	tr := readTree(t, "(A:1,(B:1,C:1):1);")
	r := layout.Layout(tr, layout.Options{Width: 100, Spacing: 10, AlignLabels: true})

	for _, l := range r.Labels {
		if l.X != 100+layout.LabelGap {
			t.Errorf("label %q: got x %g, want %g", l.Text, l.X, 100.0+layout.LabelGap)
		}
	}
	a := r.Labels[0]
	if a.Leader == nil {
		t.Fatalf("label A: expecting a leader")
	}
	ld := layout.Segment{From: layout.Point{X: 50, Y: 0}, To: layout.Point{X: 100, Y: 0}}
	if *a.Leader != ld {
		t.Errorf("leader: got %+v, want %+v", *a.Leader, ld)
	}
	if r.Labels[1].Leader != nil {
		t.Errorf("label B: unexpected leader")
	}
}

func TestLayoutCompact(t *testing.T) {
	tr := readTree(t, "(A:1,(B:1,C:1):1);")
	r := layout.Layout(tr, layout.Options{Width: 100, Spacing: 10, Compact: true})

	want := []float64{0, 6, 12}
	for i, l := range r.Labels {
		if l.Y != want[i] {
			t.Errorf("label %q: got y %g, want %g", l.Text, l.Y, want[i])
		}
	}
}

func TestLayoutStable(t *testing.T) {
	tr := readTree(t, "((A:0.3,B:0.1):0.2,(C:0.5,(D:0.1,E:0.7):0.05):0.4);")
	o := layout.DefaultOptions()
	a := layout.Layout(tr, o)
	b := layout.Layout(tr.Clone(), o)

	if len(a.Nodes) != len(b.Nodes) {
		t.Fatalf("got %d and %d nodes", len(a.Nodes), len(b.Nodes))
	}
	for i := range a.Nodes {
		if a.Nodes[i].Point != b.Nodes[i].Point {
			t.Errorf("node %d: got %v and %v", i, a.Nodes[i].Point, b.Nodes[i].Point)
		}
	}

	// parents are placed between its first and last children
	for _, p := range a.Nodes {
		n := p.Node
		if n.IsLeaf() {
			continue
		}
		first, _ := a.Position(n.Children[0])
		last, _ := a.Position(n.Children[len(n.Children)-1])
		if p.Y != first.Y+(last.Y-first.Y)/2 {
			t.Errorf("node at %v: not at the middle of its children", p.Point)
		}
	}
}

func TestLayoutZeroLengths(t *testing.T) {
	tr := readTree(t, "(A,(B,C));")
	r := layout.Layout(tr, layout.DefaultOptions())
	if r.Width != 0 || r.Scale.Length != 0 {
		t.Errorf("zero lengths: got width %g, scale %+v", r.Width, r.Scale)
	}
	if r.Height != 40 {
		t.Errorf("height: got %g, want 40", r.Height)
	}
}
