// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newickcmd implements a command to write
// the tree of a phytree project
// in Newick format.
package newickcmd

import (
	"context"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/phylo"
)

var Command = &command.Command{
	Usage: `newick [--original] [-o|--output <file>] [--verbose]
	<project-file>`,
	Short: "write the tree in Newick format",
	Long: `
Command newick reads the tree of a phytree project and writes it in Newick
format, with the renamed terminals and the current rooting.

The argument of the command is the name of the project file.

With the flag --original, the tree will be written as it was read, without
renamed terminals or rooting.

By default, the tree is written in the standard output. Use the flag -o, or
--output, to write the tree into a file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var original bool
var output string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&original, "original", false, "")
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

	t := w.Session.Current()
	if original {
		t = w.Session.Original()
	}

	if output == "" {
		return newick.Write(c.Stdout(), t)
	}
	return writeTree(output, t)
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

	if err := newick.Write(f, t); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
