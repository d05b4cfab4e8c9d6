// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a tree,
// a state store,
// or a drawing configuration
// to a phytree project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/workspace"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/phylo"
	"github.com/js-arias/phytree/project"
	"github.com/js-arias/phytree/render"
	"github.com/js-arias/phytree/store"
)

var Command = &command.Command{
	Usage: `add [--store <location>] [--draw <toml-file>]
	[-f|--file <tree-file>] [--verbose]
	<project-file> [<tree-file>]`,
	Short: "add a tree to a phytree project",
	Long: `
Command add reads a tree file and sets it as the tree of a phytree project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the tree file, in Newick, NEXUS, or time-calibrated
tab-delimited format (see 'phytree help trees'). The file will be checked
before it is added to the project. If no file is given, a tree will be read
from the standard input, and stored as a Newick file with the name
'tree.nwk'. Use the flag --file, or -f, to set a different name.

The flag --store sets the location used to keep the state of the tree
(renamed terminals and rooting). It can be a tab-delimited file, a SQLite
database (a file with extension .db or .sqlite), or a Redis URL. The flag
--draw sets a TOML file with the drawing options (see
'phytree help draw-config').

With the flag --verbose, additional information will be reported.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var storeFlag string
var drawFlag string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&storeFlag, "store", "", "")
	c.Flags().StringVar(&drawFlag, "draw", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	logger := workspace.NewLogger(c.Stderr(), verbose)

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		tf := args[1]
		f, err := os.Open(tf)
		if err != nil {
			return err
		}
		t, err := project.ReadTree(f, tf)
		f.Close()
		if err != nil {
			return fmt.Errorf("on file %q: %w", tf, err)
		}
		if t == nil {
			return fmt.Errorf("on file %q: empty tree", tf)
		}
		logger.Infof("Tree %q with %d terminals", tf, len(t.Leaves()))
		p.Add(project.Tree, tf)
	} else if storeFlag == "" && drawFlag == "" {
		t, err := project.ReadTree(c.Stdin(), "stdin")
		if err != nil {
			return fmt.Errorf("while reading stdin: %w", err)
		}
		if t == nil {
			return errors.New("while reading stdin: empty tree")
		}
		if treeFile == "" {
			treeFile = "tree.nwk"
		}
		if err := writeTree(treeFile, t); err != nil {
			return err
		}
		logger.Infof("Tree %q with %d terminals", treeFile, len(t.Leaves()))
		p.Add(project.Tree, treeFile)
	}

	if storeFlag != "" {
		st, err := store.Open(storeFlag)
		if err != nil {
			return fmt.Errorf("on store %q: %v", storeFlag, err)
		}
		st.Close()
		if prev := p.Add(project.Store, storeFlag); prev != "" && prev != storeFlag {
			logger.Warnf("Store %q replaced by %q: previous state will not be used", prev, storeFlag)
		}
	}

	if drawFlag != "" {
		f, err := os.Open(drawFlag)
		if err != nil {
			return err
		}
		_, err = render.ReadConfig(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("on file %q: %v", drawFlag, err)
		}
		p.Add(project.Draw, drawFlag)
	}

	if err := p.Write(); err != nil {
		return err
	}
	logger.Debugf("Project %q updated", pFile)
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
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
