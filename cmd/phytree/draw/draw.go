// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the tree of a phytree project
// as an SVG, PNG, or PDF image.
package draw

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
	"github.com/js-arias/phytree/layout"
	"github.com/js-arias/phytree/render"
)

var Command = &command.Command{
	Usage: `draw [--format <format>] [-o|--output <file>]
	[--width <value>] [--spacing <value>]
	[--aligned] [--compact]
	[--linewidth <value>] [--fontsize <value>]
	[--gradient] [--noscale]
	[--config <toml-file>] [--verbose]
	<project-file>`,
	Short: "draw the tree as an image",
	Long: `
Command draw reads the tree of a phytree project, with its renamed terminals
and rooting, and draws it as a rectangular phylogram.

The argument of the command is the name of the project file.

By default, the image will be written as an SVG file with the name of the
project file and the extension of the format. Use the flag -o, or --output,
to define a different file name; "-" writes the image in the standard output.
The format is defined by the extension of the output file, or with the flag
--format. Valid formats are "svg", "png", and "pdf".

By default, the drawing options are read from the drawing configuration of
the project (see 'phytree help draw-config'). The following flags override
the options of the file:

	--width      the horizontal size, in pixels, of the deepest node.
	--spacing    the vertical space between terminals.
	--aligned    align terminal names at the deepest node.
	--compact    reduce the vertical space between terminals.
	--linewidth  the width of the branches.
	--fontsize   the size of the terminal names.
	--gradient   color the branches by its length.
	--noscale    do not draw the scale bar.

With the flag --config, the options of the drawing will be written to the
indicated TOML file, and no image will be produced.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var output string
var widthFlag float64
var spacingFlag float64
var alignedFlag bool
var compactFlag bool
var lineWidth float64
var fontSize float64
var gradientFlag bool
var noScale bool
var configFile string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().Float64Var(&widthFlag, "width", 0, "")
	c.Flags().Float64Var(&spacingFlag, "spacing", 0, "")
	c.Flags().BoolVar(&alignedFlag, "aligned", false, "")
	c.Flags().BoolVar(&compactFlag, "compact", false, "")
	c.Flags().Float64Var(&lineWidth, "linewidth", 0, "")
	c.Flags().Float64Var(&fontSize, "fontsize", 0, "")
	c.Flags().BoolVar(&gradientFlag, "gradient", false, "")
	c.Flags().BoolVar(&noScale, "noscale", false, "")
	c.Flags().StringVar(&configFile, "config", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	ctx := context.Background()
	logger := workspace.NewLogger(c.Stderr(), verbose)

	w, err := workspace.Open(ctx, args[0], logger)
	if err != nil {
		return err
	}
	defer w.Close()

	cfg, err := w.Project.DrawConfig()
	if err != nil {
		return err
	}
	cfg = override(cfg)

	if configFile != "" {
		return writeConfig(configFile, cfg)
	}

	format, err := outputFormat(args[0])
	if err != nil {
		return err
	}

	r := w.Session.Layout(cfg.Layout)
	logger.Debugf("Layout: %d nodes, %.1f x %.1f", len(r.Nodes), r.Width, r.Height)

	if output == "-" {
		return render.Draw(c.Stdout(), r, format, cfg.Style)
	}
	if err := writeImage(output, r, format, cfg.Style); err != nil {
		return err
	}
	logger.Infof("Wrote tree to %s", output)
	return nil
}

func override(cfg render.Config) render.Config {
	if widthFlag > 0 {
		cfg.Layout.Width = widthFlag
	}
	if spacingFlag > 0 {
		cfg.Layout.Spacing = spacingFlag
	}
	if alignedFlag {
		cfg.Layout.AlignLabels = true
	}
	if compactFlag {
		cfg.Layout.Compact = true
	}
	if lineWidth > 0 {
		cfg.Style.LineWidth = lineWidth
	}
	if fontSize > 0 {
		cfg.Style.FontSize = fontSize
	}
	if gradientFlag {
		cfg.Style.Gradient = true
	}
	if noScale {
		cfg.Style.NoScale = true
	}
	return cfg
}

// OutputFormat sets the output file
// and returns the image format.
func outputFormat(pFile string) (string, error) {
	if formatFlag != "" {
		format := strings.ToLower(formatFlag)
		if _, err := render.FormatFromName("x." + format); err != nil {
			return "", err
		}
		if output == "" {
			output = strings.TrimSuffix(pFile, ".tab") + "." + format
		}
		return format, nil
	}

	if output == "" || output == "-" {
		if output == "" {
			output = strings.TrimSuffix(pFile, ".tab") + "." + render.SVG
		}
		return render.SVG, nil
	}
	return render.FormatFromName(output)
}

func writeImage(name string, r layout.Result, format string, sty render.Style) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := render.Draw(f, r, format, sty); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

func writeConfig(name string, cfg render.Config) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := cfg.Write(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
