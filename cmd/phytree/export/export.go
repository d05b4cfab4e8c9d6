// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the tree of a phytree project
// as a time calibrated tree.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
	"github.com/js-arias/phytree/phylo"
	"github.com/js-arias/phytree/timecal"
)

var Command = &command.Command{
	Usage: `export [--name <tree-name>] [--age <value>]
	[-o|--output <file>] [--verbose]
	<project-file>`,
	Short: "export the tree as a time calibrated tree",
	Long: `
Command export reads the tree of a phytree project, with its renamed
terminals and current rooting, and writes it as a time calibrated tree in a
tab-delimited file (see 'phytree help trees').

The argument of the command is the name of the project file.

Branch lengths are read as million years. By default, the age of the root
will be calculated from the largest distance between the root and any
terminal. To set a different root age, use the flag --age, with a value in
million years.

By default, the tree will be named after the project file. Use the flag
--name to set a different name.

By default, the tree is written in the standard output. Use the flag -o, or
--output, to write the tree into a file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var rootAge float64
var output string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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

	if treeName == "" {
		treeName = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}

	t := w.Session.Current()
	if output == "" {
		return timecal.WriteTSV(c.Stdout(), t, treeName, rootAge)
	}

	if err := writeTree(output, t); err != nil {
		return err
	}
	logger.Infof("Tree %q exported to %s", treeName, output)
	return nil
}

func writeTree(name string, t *phylo.Node) (err error) {
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

	if err := timecal.WriteTSV(f, t, treeName, rootAge); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
