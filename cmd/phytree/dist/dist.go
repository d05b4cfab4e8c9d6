// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dist implements a command to print
// the patristic distances between the terminals
// of the tree of a phytree project.
package dist

import (
	"context"
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
	"github.com/js-arias/phytree/distance"
)

var Command = &command.Command{
	Usage: "dist [--stats] [--verbose] <project-file>",
	Short: "print patristic distances between terminals",
	Long: `
Command dist reads the tree of a phytree project and prints the patristic
distance (the sum of branch lengths along the path) between each pair of
terminals, as a tab-delimited table in the standard output. Terminals are
identified by their displayed names.

The argument of the command is the name of the project file.

With the flag --stats, instead of the table, it prints the mean and standard
deviation of the distances, and the pair of terminals with the largest
distance (the tree diameter).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var statsFlag bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&statsFlag, "stats", false, "")
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

	m := distance.New(w.Session.Current())
	if !statsFlag {
		return m.TSV(c.Stdout())
	}

	mean, sd := m.MeanStdDev()
	a, b, d := m.Diameter()
	fmt.Fprintf(c.Stdout(), "terminals\t%d\n", len(m.Names()))
	fmt.Fprintf(c.Stdout(), "mean\t%.6f\n", mean)
	fmt.Fprintf(c.Stdout(), "stddev\t%.6f\n", sd)
	fmt.Fprintf(c.Stdout(), "diameter\t%.6f\t%s\t%s\n", d, a, b)
	return nil
}
