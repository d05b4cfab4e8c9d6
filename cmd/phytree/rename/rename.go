// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rename implements a command to change
// the displayed names of the terminals
// of the tree of a phytree project.
package rename

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
	"github.com/js-arias/phytree/session"
	"gopkg.in/yaml.v3"
)

var Command = &command.Command{
	Usage: `rename [--file <yaml-file>] [--reset] [--verbose]
	<project-file> [<terminal> <new-name>]`,
	Short: "rename tree terminals",
	Long: `
Command rename changes the displayed name of one or more terminals of the
tree of a phytree project. The original names of the terminals are never
modified, and the renamed terminals are kept in the project store.

The first argument of the command is the name of the project file.

The second and third arguments are the displayed name of a terminal and its
new name. If the new name is empty, or it is the original name of the
terminal, the original name will be restored. A name already used by another
terminal is an error.

With the flag --file, the names will be read from a YAML file, as a mapping
of the current displayed name of a terminal to its new name, for example:

	Acer_rubrum: red maple
	Acer_saccharum: sugar maple

With the flag --reset, the original names of all terminals are restored.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fileFlag string
var resetFlag bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&fileFlag, "file", "", "")
	c.Flags().BoolVar(&resetFlag, "reset", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) == 2 {
		return c.UsageError("expecting new name")
	}

	ctx := context.Background()
	logger := workspace.NewLogger(c.Stderr(), verbose)

	w, err := workspace.Open(ctx, args[0], logger)
	if err != nil {
		return err
	}
	defer w.Close()

	if resetFlag {
		if err := w.Session.ResetNames(); err != nil {
			return err
		}
		logger.Infof("Original names restored")
	}

	if fileFlag != "" {
		f, err := os.Open(fileFlag)
		if err != nil {
			return err
		}
		names, err := readNames(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("on file %q: %v", fileFlag, err)
		}
		if err := renameAll(w.Session, names); err != nil {
			return fmt.Errorf("on file %q: %w", fileFlag, err)
		}
		logger.Infof("%d terminals renamed", len(names))
	}

	if len(args) > 2 {
		if err := w.Session.Rename(args[1], args[2]); err != nil {
			return err
		}
		logger.Infof("Terminal %q renamed to %q", args[1], args[2])
	}

	return w.Save(ctx)
}

// ReadNames reads a YAML mapping
// of current names to new names.
func readNames(r io.Reader) (map[string]string, error) {
	names := make(map[string]string)
	if err := yaml.NewDecoder(r).Decode(&names); err != nil {
		if err == io.EOF {
			return names, nil
		}
		return nil, err
	}
	return names, nil
}

// RenameAll renames a set of terminals.
// Names are applied in alphabetical order
// of the current names.
func renameAll(s *session.Session, names map[string]string) error {
	tips := make([]string, 0, len(names))
	for t := range names {
		tips = append(tips, t)
	}
	slices.Sort(tips)

	for _, t := range tips {
		if err := s.Rename(t, names[t]); err != nil {
			return err
		}
	}
	return nil
}
