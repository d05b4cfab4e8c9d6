// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"io"

	"github.com/js-arias/phytree/layout"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// ImageSurface is a surface
// for PNG and PDF images.
// Its origin is at the bottom-left,
// so vertical positions are flipped.
type imageSurface struct {
	w      io.Writer
	height float64
	dc     draw.Canvas
	to     io.WriterTo

	// italic is set if the canvas
	// can draw italic faces.
	// The PDF canvas only embeds regular faces.
	italic bool
}

func newImage(w io.Writer, width, height float64, pdf bool) *imageSurface {
	s := &imageSurface{
		w:      w,
		height: height,
	}
	wd := vg.Length(width)
	ht := vg.Length(height)
	if pdf {
		c := vgpdf.New(wd, ht)
		s.dc = draw.New(c)
		s.to = c
	} else {
		c := vgimg.NewWith(vgimg.UseWH(wd, ht), vgimg.UseDPI(72))
		s.dc = draw.New(c)
		s.to = vgimg.PngCanvas{Canvas: c}
		s.italic = true
	}
	return s
}

func (s *imageSurface) point(p layout.Point) vg.Point {
	return vg.Point{
		X: vg.Length(p.X),
		Y: vg.Length(s.height - p.Y),
	}
}

func (s *imageSurface) line(from, to layout.Point, c color.Color, width float64, dashed bool) {
	sty := draw.LineStyle{
		Color: c,
		Width: vg.Length(width),
	}
	if dashed {
		sty.Dashes = []vg.Length{3, 3}
	}
	a := s.point(from)
	b := s.point(to)
	s.dc.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
}

func (s *imageSurface) text(p layout.Point, txt string, size float64) {
	fnt := plot.DefaultFont
	fnt.Size = vg.Length(size)
	if s.italic {
		fnt.Style = xfont.StyleItalic
	}
	sty := text.Style{
		Color:   color.Black,
		Font:    fnt,
		XAlign:  text.XLeft,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	s.dc.FillText(sty, s.point(p), txt)
}

func (s *imageSurface) close() error {
	_, err := s.to.WriteTo(s.w)
	return err
}
