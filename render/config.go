// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/js-arias/phytree/layout"
)

// Style is the drawing style.
type Style struct {
	// LineWidth is the width of the branches.
	LineWidth float64 `toml:"line-width"`

	// FontSize is the size of the terminal labels.
	FontSize float64 `toml:"font-size"`

	// Margin is the empty space around the tree.
	Margin float64 `toml:"margin"`

	// If Gradient is true,
	// branches are coloured by its length.
	Gradient bool `toml:"gradient"`

	// If NoScale is true,
	// the scale bar is not drawn.
	NoScale bool `toml:"no-scale"`
}

// DefaultStyle returns the default drawing style.
func DefaultStyle() Style {
	return Style{
		LineWidth: 1.5,
		FontSize:  12,
		Margin:    20,
	}
}

// Config is the configuration of a drawing.
type Config struct {
	Layout layout.Options `toml:"layout"`
	Style  Style          `toml:"style"`
}

// DefaultConfig returns the default drawing configuration.
func DefaultConfig() Config {
	return Config{
		Layout: layout.DefaultOptions(),
		Style:  DefaultStyle(),
	}
}

// ReadConfig reads a drawing configuration
// from a TOML file.
// Values not defined in the file
// take the default value.
//
// Here is an example file:
//
//	[layout]
//	width = 800
//	spacing = 16
//	align-labels = true
//
//	[style]
//	line-width = 2
//	font-size = 10
//	gradient = true
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("while reading drawing configuration: %v", err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return Config{}, fmt.Errorf("while reading drawing configuration: unknown key %q", u[0].String())
	}
	if c.Layout.Width <= 0 {
		return Config{}, fmt.Errorf("while reading drawing configuration: invalid width %g", c.Layout.Width)
	}
	if c.Layout.Spacing <= 0 {
		return Config{}, fmt.Errorf("while reading drawing configuration: invalid spacing %g", c.Layout.Spacing)
	}
	return c, nil
}

// Write writes the configuration
// as a TOML file.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
