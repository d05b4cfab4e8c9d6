// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout computes the coordinates
// of a rectangular phylogram.
//
// Horizontal positions are the cumulative branch lengths from the root,
// scaled to a fixed width.
// Terminals are placed at regular vertical slots
// in left to right order,
// and each internal node is placed at the middle
// of its first and last children.
// The coordinates use a top-left origin.
package layout

import (
	"math"

	"github.com/js-arias/phytree/phylo"
)

// CompactFactor is the factor applied to the vertical spacing
// in compact mode.
const CompactFactor = 0.6

// LabelGap is the horizontal space
// between a terminal (or the end of its leader)
// and its label.
const LabelGap = 6

// Options are the layout options.
type Options struct {
	// Width is the width, in pixels,
	// of the deepest node.
	Width float64 `toml:"width"`

	// Spacing is the vertical space, in pixels,
	// between two terminals.
	Spacing float64 `toml:"spacing"`

	// If Compact is true,
	// the spacing is reduced by CompactFactor.
	Compact bool `toml:"compact"`

	// If AlignLabels is true,
	// all labels are aligned at the deepest node
	// and connected to its terminal with a dashed leader.
	AlignLabels bool `toml:"align-labels"`
}

// DefaultOptions returns the default layout options.
func DefaultOptions() Options {
	return Options{
		Width:   600,
		Spacing: 20,
	}
}

// A Point is a position in the drawing.
type Point struct {
	X, Y float64
}

// A Segment is a straight line.
type Segment struct {
	From, To Point
}

// A Position is the position of a node.
type Position struct {
	Node *phylo.Node
	Point

	// Depth is the sum of branch lengths
	// from the root.
	Depth float64
}

// A Connector is an elbow that connects a node with its parent:
// a vertical line from the parent to the corner,
// and a horizontal line from the corner to the node.
type Connector struct {
	Node   *phylo.Node
	Length float64

	From   Point
	Corner Point
	To     Point
}

// A Label is the name of a terminal.
type Label struct {
	Node *phylo.Node
	Text string
	Point

	// Leader is the dashed segment
	// between the terminal and an aligned label.
	// It is nil for labels placed at the terminal.
	Leader *Segment
}

// A ScaleBar is a bar with a reference branch length.
type ScaleBar struct {
	// Value is the branch length represented by the bar,
	// rounded to three decimals.
	Value float64

	// Length is the length of the bar in pixels.
	Length float64

	// Position of the left end of the bar.
	Point
}

// A Result is the layout of a tree.
type Result struct {
	Nodes      []Position
	Connectors []Connector
	Labels     []Label
	Scale      ScaleBar

	// Width is the position of the deepest node,
	// and Height the position of the last terminal.
	Width  float64
	Height float64

	// MaxDepth is the largest sum of branch lengths
	// from the root to any node.
	MaxDepth float64

	index map[*phylo.Node]int
}

// Position returns the position of a node.
func (r Result) Position(n *phylo.Node) (Position, bool) {
	i, ok := r.index[n]
	if !ok {
		return Position{}, false
	}
	return r.Nodes[i], true
}

type builder struct {
	r      *Result
	scale  float64
	step   float64
	leaves int
}

// Layout returns the layout of a tree.
// The tree is not modified.
func Layout(t *phylo.Node, o Options) Result {
	r := Result{
		index: make(map[*phylo.Node]int),
	}
	if t == nil {
		return r
	}

	step := o.Spacing
	if o.Compact {
		step *= CompactFactor
	}

	r.MaxDepth = t.Depth()
	b := &builder{
		r:    &r,
		step: step,
	}
	if r.MaxDepth > 0 {
		b.scale = o.Width / r.MaxDepth
	}

	b.prepare(t, 0)
	b.connect(t)

	for _, p := range r.Nodes {
		if p.X > r.Width {
			r.Width = p.X
		}
		if p.Y > r.Height {
			r.Height = p.Y
		}
	}
	b.labels(o.AlignLabels)

	v := math.Round(r.MaxDepth*0.2*1000) / 1000
	r.Scale = ScaleBar{
		Value:  v,
		Length: v * b.scale,
		Point:  Point{X: 0, Y: r.Height + step},
	}
	return r
}

// Prepare sets the position of the node,
// and returns its vertical position.
func (b *builder) prepare(n *phylo.Node, depth float64) float64 {
	id := len(b.r.Nodes)
	b.r.index[n] = id
	b.r.Nodes = append(b.r.Nodes, Position{
		Node:  n,
		Depth: depth,
		Point: Point{X: depth * b.scale},
	})

	if n.IsLeaf() {
		y := float64(b.leaves) * b.step
		b.leaves++
		b.r.Nodes[id].Y = y
		return y
	}

	top := math.Inf(1)
	bot := math.Inf(-1)
	for _, d := range n.Children {
		y := b.prepare(d, depth+d.Len())
		top = math.Min(top, y)
		bot = math.Max(bot, y)
	}
	y := top + (bot-top)/2
	b.r.Nodes[id].Y = y
	return y
}

func (b *builder) connect(n *phylo.Node) {
	p := b.r.Nodes[b.r.index[n]]
	for _, d := range n.Children {
		c := b.r.Nodes[b.r.index[d]]
		b.r.Connectors = append(b.r.Connectors, Connector{
			Node:   d,
			Length: d.Len(),
			From:   p.Point,
			Corner: Point{X: p.X, Y: c.Y},
			To:     c.Point,
		})
		b.connect(d)
	}
}

func (b *builder) labels(align bool) {
	for _, p := range b.r.Nodes {
		if !p.Node.IsLeaf() {
			continue
		}
		l := Label{
			Node:  p.Node,
			Text:  p.Node.Name,
			Point: Point{X: p.X + LabelGap, Y: p.Y},
		}
		if align {
			l.X = b.r.Width + LabelGap
			if p.X < b.r.Width {
				l.Leader = &Segment{
					From: p.Point,
					To:   Point{X: b.r.Width, Y: p.Y},
				}
			}
		}
		b.r.Labels = append(b.r.Labels, l)
	}
}
