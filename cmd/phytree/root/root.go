// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package root implements a command to change
// the rooting of the tree of a phytree project.
package root

import (
	"context"
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/session"
)

var Command = &command.Command{
	Usage: `root [--tip <name>] [--midpoint] [--clear]
	[--verbose] <project-file>`,
	Short: "change the rooting of a tree",
	Long: `
Command root changes the rooting of the tree of a phytree project, and keeps
the new rooting in the project store.

The argument of the command is the name of the project file.

With the flag --tip, the tree is rooted at the indicated terminal, using its
displayed name. The terminal will be the first child of the new root, and the
rest of the tree the second child.

With the flag --midpoint, the tree is rooted at the middle of the longest
path between two terminals. If the tree is already rooted at its midpoint,
the original rooting is restored.

With the flag --clear, the original rooting is restored.

If no flag is given, the current rooting is printed. In all cases, the
resulting tree is printed in Newick format in the standard output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tipFlag string
var midpointFlag bool
var clearFlag bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tipFlag, "tip", "", "")
	c.Flags().BoolVar(&midpointFlag, "midpoint", false, "")
	c.Flags().BoolVar(&clearFlag, "clear", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	n := 0
	for _, f := range []bool{tipFlag != "", midpointFlag, clearFlag} {
		if f {
			n++
		}
	}
	if n > 1 {
		return c.UsageError("only one of --tip, --midpoint, or --clear can be used")
	}

	ctx := context.Background()
	logger := workspace.NewLogger(c.Stderr(), verbose)

	w, err := workspace.Open(ctx, args[0], logger)
	if err != nil {
		return err
	}
	defer w.Close()

	s := w.Session
	switch {
	case tipFlag != "":
		if err := s.RootByTip(tipFlag); err != nil {
			return err
		}
		logger.Infof("Tree rooted at %q", tipFlag)
	case midpointFlag:
		if err := s.Midpoint(); err != nil {
			if werr := w.Save(ctx); werr != nil {
				logger.Error(werr)
			}
			return err
		}
		if s.Rooting() == session.MidpointRooting {
			logger.Infof("Tree rooted at its midpoint")
		} else {
			logger.Infof("Original rooting restored")
		}
	case clearFlag:
		if err := s.Unroot(); err != nil {
			return err
		}
		logger.Infof("Original rooting restored")
	default:
		r := s.Rooting()
		if r == "" {
			r = "original"
		}
		fmt.Fprintf(c.Stderr(), "# rooting: %s\n", r)
	}

	if n > 0 {
		if err := w.Save(ctx); err != nil {
			return err
		}
	}
	return newick.Write(c.Stdout(), s.Current())
}
