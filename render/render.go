// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render draws the layout of a phylogram
// as an SVG, PNG, or PDF image.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/js-arias/blind"
	"github.com/js-arias/phytree/layout"
)

// ErrUnknownFormat is returned when an image format
// is not supported.
var ErrUnknownFormat = errors.New("unknown image format")

// Image formats.
const (
	SVG = "svg"
	PNG = "png"
	PDF = "pdf"
)

// FormatFromName returns the image format
// from the extension of a file name.
func FormatFromName(name string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case SVG, PNG, PDF:
		return ext, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// A surface is a drawing surface
// with a top-left origin.
type surface interface {
	line(from, to layout.Point, c color.Color, width float64, dashed bool)
	text(p layout.Point, txt string, size float64)
	close() error
}

func newSurface(w io.Writer, format string, width, height float64) (surface, error) {
	switch strings.ToLower(format) {
	case SVG:
		return newSVG(w, width, height), nil
	case PNG:
		return newImage(w, width, height, false), nil
	case PDF:
		return newImage(w, width, height, true), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// CharWidth is the expected width of a character
// as a fraction of the font size.
const charWidth = 0.6

// Draw draws a layout into w
// using the indicated format.
func Draw(w io.Writer, r layout.Result, format string, sty Style) error {
	var maxLabel int
	for _, l := range r.Labels {
		if n := len([]rune(l.Text)); n > maxLabel {
			maxLabel = n
		}
	}
	right := r.Width
	for _, l := range r.Labels {
		if l.X > right {
			right = l.X
		}
	}
	width := right + float64(maxLabel)*sty.FontSize*charWidth + 2*sty.Margin
	height := r.Height + 2*sty.Margin
	if !sty.NoScale && r.Scale.Length > 0 {
		height = r.Scale.Y + sty.FontSize*1.5 + 2*sty.Margin
	}

	s, err := newSurface(w, format, width, height)
	if err != nil {
		return err
	}

	var maxLen float64
	for _, c := range r.Connectors {
		if c.Length > maxLen {
			maxLen = c.Length
		}
	}

	m := sty.Margin
	shift := func(p layout.Point) layout.Point {
		return layout.Point{X: p.X + m, Y: p.Y + m}
	}

	for _, c := range r.Connectors {
		s.line(shift(c.From), shift(c.Corner), color.Black, sty.LineWidth, false)
		col := color.Color(color.Black)
		if sty.Gradient && maxLen > 0 {
			col = blind.Sequential(blind.Iridescent, c.Length/maxLen)
		}
		s.line(shift(c.Corner), shift(c.To), col, sty.LineWidth, false)
	}

	gray := color.RGBA{160, 160, 160, 255}
	for _, l := range r.Labels {
		if l.Leader != nil {
			s.line(shift(l.Leader.From), shift(l.Leader.To), gray, sty.LineWidth/2, true)
		}
		s.text(shift(l.Point), l.Text, sty.FontSize)
	}

	if !sty.NoScale && r.Scale.Length > 0 {
		from := shift(r.Scale.Point)
		to := layout.Point{X: from.X + r.Scale.Length, Y: from.Y}
		s.line(from, to, color.Black, sty.LineWidth, false)
		v := strconv.FormatFloat(r.Scale.Value, 'f', -1, 64)
		s.text(layout.Point{X: from.X, Y: from.Y + sty.FontSize}, v, sty.FontSize*0.8)
	}

	return s.close()
}
