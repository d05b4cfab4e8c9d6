// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reroot_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/js-arias/phytree/distance"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/phylo"
	"github.com/js-arias/phytree/reroot"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-9

func TestByTip(t *testing.T) {
	tr := mustParse(t, "(A:1,(B:2,(C:3,D:4):5):6);")

	rt, err := reroot.ByTip(tr.Clone(), "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rt.Children) != 2 {
		t.Fatalf("root: got %d children, want 2", len(rt.Children))
	}
	tip := rt.Children[0]
	if tip.Name != "C" || tip.Length != 3 {
		t.Errorf("tip: got %q:%g, want C:3", tip.Name, tip.Length)
	}
	if rest := rt.Children[1]; rest.Length != 0 {
		t.Errorf("rest of tree: got length %g, want 0", rest.Length)
	}
	testSameDistances(t, "tip C", rt, tr)

	// the source tree is modified,
	// so rerooting a clone keeps the original untouched.
	if got := newick.Format(tr); got != "(A:1,(B:2,(C:3,D:4):5):6);" {
		t.Errorf("source tree changed: %s", got)
	}
}

func TestByTipRootChild(t *testing.T) {
	tr := mustParse(t, "(A:1,(B:1,C:1):1);")
	rt, err := reroot.ByTip(tr.Clone(), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Children[0].Name != "A" || rt.Children[0].Length != 1 {
		t.Errorf("tip: got %q:%g, want A:1", rt.Children[0].Name, rt.Children[0].Length)
	}
	testSameDistances(t, "tip A", rt, tr)
}

func TestByTipNotFound(t *testing.T) {
	tr := mustParse(t, "(A:1,(B:1,C:1):1);")
	if _, err := reroot.ByTip(tr, "Z"); !errors.Is(err, reroot.ErrTipNotFound) {
		t.Errorf("got error %v, want %v", err, reroot.ErrTipNotFound)
	}
	// internal node names are not tips
	tr = mustParse(t, "(A:1,(B:1,C:1)X:1);")
	if _, err := reroot.ByTip(tr, "X"); !errors.Is(err, reroot.ErrTipNotFound) {
		t.Errorf("internal node: got error %v, want %v", err, reroot.ErrTipNotFound)
	}
}

func TestAtTip(t *testing.T) {
	tr := mustParse(t, "(A:1,(B:1,C:1):1);")

	// duplicated names are resolved by node identity
	tr.Children[1].Children[1].Name = "B"
	tip := tr.Children[1].Children[1]
	rt, err := reroot.AtTip(tr, tip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Children[0] != tip {
		t.Errorf("first child: got %q, want the second B", rt.Children[0].Original)
	}

	other := mustParse(t, "(A:1,B:1);")
	if _, err := reroot.AtTip(other, &phylo.Node{Name: "Z"}); !errors.Is(err, reroot.ErrTipNotFound) {
		t.Errorf("node not in tree: got error %v, want %v", err, reroot.ErrTipNotFound)
	}
	if _, err := reroot.AtTip(other, other); !errors.Is(err, reroot.ErrTipNotFound) {
		t.Errorf("root: got error %v, want %v", err, reroot.ErrTipNotFound)
	}
}

func TestByTipRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 20; i++ {
		tr := randTree(rnd, 3+rnd.IntN(20))
		for _, l := range tr.Leaves() {
			rt, err := reroot.ByTip(tr.Clone(), l.Name)
			if err != nil {
				t.Fatalf("tree %d: tip %q: %v", i, l.Name, err)
			}
			testSameDistances(t, fmt.Sprintf("tree %d: tip %q", i, l.Name), rt, tr)
			if rt.Children[0].Name != l.Name {
				t.Errorf("tree %d: tip %q: got first child %q", i, l.Name, rt.Children[0].Name)
			}
		}
	}
}

func TestByTipSequence(t *testing.T) {
	rnd := rand.New(rand.NewPCG(13, 17))
	tr := randTree(rnd, 12)
	leaves := tr.Leaves()
	x, y := leaves[2].Name, leaves[9].Name

	t1, err := reroot.ByTip(tr.Clone(), x)
	if err != nil {
		t.Fatalf("reroot at %q: %v", x, err)
	}
	t2, err := reroot.ByTip(t1.Clone(), y)
	if err != nil {
		t.Fatalf("reroot at %q: %v", y, err)
	}
	t3, err := reroot.ByTip(t2.Clone(), x)
	if err != nil {
		t.Fatalf("reroot at %q: %v", x, err)
	}
	testSameDistances(t, "x-y-x", t3, tr)
	testSameDistances(t, "x-y-x vs x", t3, t1)
}

func TestMidpoint(t *testing.T) {
	tr := mustParse(t, "(A:1,(B:1,C:1):1);")

	mp, err := reroot.Midpoint(tr.Clone())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mp.Children) != 2 {
		t.Fatalf("root: got %d children, want 2", len(mp.Children))
	}
	if l0, l1 := mp.Children[0].Length, mp.Children[1].Length; l0 != 0.5 || l1 != 0.5 {
		t.Errorf("split lengths: got %g, %g, want 0.5, 0.5", l0, l1)
	}
	dist := rootDistances(mp)
	for _, tip := range []string{"A", "B"} {
		if d := dist[tip]; d != 1.5 {
			t.Errorf("distance from root to %q: got %g, want 1.5", tip, d)
		}
	}
	testSameDistances(t, "midpoint", mp, tr)
}

func TestMidpointAtNode(t *testing.T) {
	tr := mustParse(t, "((A:1,B:1)X:1,(C:1.5,D:0.5):0.5);")

	// longest path A-C = 4, its midpoint is the root
	mp, err := reroot.Midpoint(tr.Clone())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mp.Children) != 2 {
		t.Fatalf("root: got %d children, want 2", len(mp.Children))
	}
	if mp.Children[0].Name != "X" {
		t.Errorf("first child: got %q, want X", mp.Children[0].Name)
	}
	testSameDistances(t, "midpoint at node", mp, tr)
}

func TestMidpointRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(21, 34))
	for i := 0; i < 50; i++ {
		tr := randTree(rnd, 2+rnd.IntN(25))
		mp, err := reroot.Midpoint(tr.Clone())
		if err != nil {
			t.Fatalf("tree %d: %v", i, err)
		}
		name := fmt.Sprintf("tree %d", i)
		testSameDistances(t, name, mp, tr)

		_, _, diam := distance.New(tr).Diameter()
		var max float64
		var atMax int
		dist := rootDistances(mp)
		for _, d := range dist {
			if d > max {
				max = d
			}
		}
		for _, d := range dist {
			if scalar.EqualWithinAbs(d, max, tolerance) {
				atMax++
			}
		}
		if !scalar.EqualWithinAbs(max, diam/2, tolerance) {
			t.Errorf("%s: largest root distance: got %g, want %g", name, max, diam/2)
		}
		if atMax < 2 {
			t.Errorf("%s: got %d terminals at largest root distance, want at least 2", name, atMax)
		}
	}
}

func TestMidpointUndefined(t *testing.T) {
	if _, err := reroot.Midpoint(&phylo.Node{Name: "A"}); !errors.Is(err, reroot.ErrMidpointUndefined) {
		t.Errorf("got error %v, want %v", err, reroot.ErrMidpointUndefined)
	}
}

func TestMidpointZeroLengths(t *testing.T) {
	tr := mustParse(t, "(A,(B,C));")
	mp, err := reroot.Midpoint(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := newick.Format(mp); got != "(A,(B,C));" {
		t.Errorf("got %s, want unchanged tree", got)
	}
}

func mustParse(t testing.TB, s string) *phylo.Node {
	t.Helper()

	tr, err := newick.Read(s)
	if err != nil {
		t.Fatalf("unable to parse %q: %v", s, err)
	}
	return tr
}

// RootDistances returns the distance from the root
// to each terminal.
func rootDistances(t *phylo.Node) map[string]float64 {
	dist := make(map[string]float64)
	var walk func(n *phylo.Node, d float64)
	walk = func(n *phylo.Node, d float64) {
		if n.IsLeaf() {
			dist[n.Name] = d
			return
		}
		for _, c := range n.Children {
			walk(c, d+c.Len())
		}
	}
	walk(t, 0)
	return dist
}

func testSameDistances(t testing.TB, name string, got, want *phylo.Node) {
	t.Helper()

	gm := distance.New(got)
	wm := distance.New(want)
	names := wm.Names()
	if len(gm.Names()) != len(names) {
		t.Fatalf("%s: got %d terminals, want %d", name, len(gm.Names()), len(names))
	}
	for i, a := range names {
		for _, b := range names[i+1:] {
			g, w := gm.Dist(a, b), wm.Dist(a, b)
			if !scalar.EqualWithinAbs(g, w, tolerance) {
				t.Errorf("%s: distance %s-%s: got %g, want %g", name, a, b, g, w)
			}
		}
	}
}

func randTree(rnd *rand.Rand, n int) *phylo.Node {
	nodes := make([]*phylo.Node, n)
	for i := range nodes {
		nodes[i] = &phylo.Node{
			Name:   fmt.Sprintf("t%d", i),
			Length: float64(rnd.IntN(1000)+1) / 100,
		}
	}
	for len(nodes) > 1 {
		k := 2
		if len(nodes) > 2 && rnd.IntN(4) == 0 {
			k = 3
		}
		var children []*phylo.Node
		for j := 0; j < k; j++ {
			x := rnd.IntN(len(nodes))
			children = append(children, nodes[x])
			nodes = append(nodes[:x], nodes[x+1:]...)
		}
		nodes = append(nodes, &phylo.Node{
			Length:   float64(rnd.IntN(1000)+1) / 100,
			Children: children,
		})
	}
	root := nodes[0]
	root.Length = 0
	phylo.SetOriginalNames(root)
	return root
}
