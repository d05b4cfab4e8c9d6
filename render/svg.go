// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/js-arias/phytree/layout"
)

type svgSurface struct {
	c *svg.SVG
}

func newSVG(w io.Writer, width, height float64) *svgSurface {
	c := svg.New(w)
	c.Start(px(width), px(height))
	c.Gstyle("stroke-linecap:round;font-family:Verdana")
	return &svgSurface{c: c}
}

func (s *svgSurface) line(from, to layout.Point, c color.Color, width float64, dashed bool) {
	style := fmt.Sprintf("stroke:%s;stroke-width:%g", rgb(c), width)
	if dashed {
		style += ";stroke-dasharray:3,3"
	}
	s.c.Line(px(from.X), px(from.Y), px(to.X), px(to.Y), style)
}

func (s *svgSurface) text(p layout.Point, txt string, size float64) {
	// the baseline is moved
	// to center the text at the point
	y := p.Y + size/3
	s.c.Text(px(p.X), px(y), txt, fmt.Sprintf("font-size:%gpx;font-style:italic;stroke-width:0", size))
}

func (s *svgSurface) close() error {
	s.c.Gend()
	s.c.End()
	return nil
}

func px(v float64) int {
	return int(math.Round(v))
}

func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
