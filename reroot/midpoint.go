// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reroot

import (
	"errors"

	"github.com/js-arias/phytree/phylo"
)

// ErrMidpointUndefined is returned when the midpoint
// of a tree is undefined
// (i.e., the tree has less than two nodes).
var ErrMidpointUndefined = errors.New("midpoint undefined")

// An edge of the undirected view of the tree.
type edge struct {
	to int
	w  float64
}

// A graph is the tree
// viewed as an undirected weighted graph.
// Nodes are indexed in pre-order,
// and the parent of a node
// is always its first neighbor.
type graph struct {
	nodes []*phylo.Node
	adj   [][]edge
}

func newGraph(t *phylo.Node) *graph {
	g := &graph{}
	g.add(t, -1)
	return g
}

func (g *graph) add(n *phylo.Node, parent int) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)
	if parent >= 0 {
		w := n.Len()
		g.adj[id] = append(g.adj[id], edge{to: parent, w: w})
		g.adj[parent] = append(g.adj[parent], edge{to: id, w: w})
	}
	for _, d := range n.Children {
		g.add(d, id)
	}
	return id
}

// Farthest returns the terminal
// (a node of degree one or less)
// farthest from the source node.
// Ties are resolved in favor of the first terminal
// found in the traversal.
// It also returns the distance to each node,
// and the predecessor of each node
// in the path from the source.
func (g *graph) farthest(src int) (far int, dist []float64, prev []int) {
	dist = make([]float64, len(g.nodes))
	prev = make([]int, len(g.nodes))
	for i := range prev {
		prev[i] = -1
	}
	visited := make([]bool, len(g.nodes))

	far = src
	stack := []int{src}
	visited[src] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(g.adj[v]) <= 1 && dist[v] > dist[far] {
			far = v
		}

		// push in reverse,
		// so neighbors are visited in order
		for i := len(g.adj[v]) - 1; i >= 0; i-- {
			e := g.adj[v][i]
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			dist[e.to] = dist[v] + e.w
			prev[e.to] = v
			stack = append(stack, e.to)
		}
	}
	return far, dist, prev
}

func (g *graph) weight(u, v int) float64 {
	for _, e := range g.adj[u] {
		if e.to == v {
			return e.w
		}
	}
	return 0
}

// Build builds the subtree hanging from a node,
// with the given branch length,
// excluding the neighbor from which it is reached.
func (g *graph) build(id, from int, length float64) *phylo.Node {
	src := g.nodes[id]
	n := &phylo.Node{
		Name:     src.Name,
		Original: src.Original,
		Length:   length,
	}
	for _, e := range g.adj[id] {
		if e.to == from {
			continue
		}
		n.Children = append(n.Children, g.build(e.to, id, e.w))
	}
	return n
}

// Midpoint reroots a tree at the midpoint
// of the longest path between two terminals.
//
// If the midpoint is at a node,
// that node becomes the root.
// Otherwise,
// the branch that contains the midpoint is split,
// and a new root is added
// with the two sides of the split branch as children.
func Midpoint(t *phylo.Node) (*phylo.Node, error) {
	g := newGraph(t)
	if len(g.nodes) < 2 {
		return nil, ErrMidpointUndefined
	}

	start := 0
	for i, adj := range g.adj {
		if len(adj) <= 1 {
			start = i
			break
		}
	}
	a, _, _ := g.farthest(start)
	b, dist, prev := g.farthest(a)
	diameter := dist[b]
	if diameter == 0 {
		return t, nil
	}

	// path from A to B
	var path []int
	for v := b; v != -1; v = prev[v] {
		path = append(path, v)
		if len(path) > len(g.nodes) {
			break
		}
	}
	if len(path) < 2 || path[len(path)-1] != a {
		return nil, errors.New("midpoint: unable to reconstruct the longest path")
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	half := diameter / 2
	var sum float64
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		w := g.weight(u, v)
		if sum == half {
			return g.build(u, -1, 0), nil
		}
		if sum+w < half {
			sum += w
			continue
		}
		if sum+w == half {
			return g.build(v, -1, 0), nil
		}

		along := half - sum
		return &phylo.Node{
			Children: []*phylo.Node{
				g.build(u, v, along),
				g.build(v, u, w-along),
			},
		}, nil
	}
	return nil, errors.New("midpoint: midpoint outside the longest path")
}
