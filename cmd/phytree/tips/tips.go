// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tips implements a command to print
// the terminals of the tree of a phytree project.
package tips

import (
	"context"
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
)

var Command = &command.Command{
	Usage: "tips [--original] [--verbose] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command tips reads the tree of a phytree project and prints the names of the
terminals in the standard output, in alphabetical order.

The argument of the command is the name of the project file.

By default, the displayed names (after renaming) are printed. With the flag
--original, each line will contain the original name of the terminal and its
displayed name, separated by a tab.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var original bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&original, "original", false, "")
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

	if !original {
		for _, tip := range w.Session.TipNames() {
			fmt.Fprintf(c.Stdout(), "%s\n", tip)
		}
		return nil
	}

	type pair struct {
		orig, name string
	}
	var ls []pair
	for _, l := range w.Session.Current().Leaves() {
		if l.Original == "" && l.Name == "" {
			continue
		}
		ls = append(ls, pair{orig: l.Original, name: l.Name})
	}
	slices.SortFunc(ls, func(a, b pair) int {
		if a.orig < b.orig {
			return -1
		}
		if a.orig > b.orig {
			return 1
		}
		return 0
	})
	for _, p := range ls {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", p.orig, p.name)
	}
	return nil
}
