// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package workspace opens the tree of a phytree project
// together with its saved state,
// and sets the logger used by the commands.
package workspace

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/js-arias/phytree/project"
	"github.com/js-arias/phytree/session"
	"github.com/js-arias/phytree/store"
)

// NewLogger returns the logger used by the commands.
// If verbose is true,
// debug messages are also reported.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// A Workspace is a project
// with its tree view.
type Workspace struct {
	Project *project.Project
	Session *session.Session
	Store   store.Store

	logger *log.Logger
}

// Open opens a project file,
// reads its tree,
// and restores the state of the tree
// from the project store.
//
// If the saved rooting can not be applied,
// a warning is reported
// and the tree keeps its original rooting.
func Open(ctx context.Context, name string, logger *log.Logger) (*Workspace, error) {
	p, err := project.Read(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}

	t, err := p.Tree()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("on project %q: %w", name, session.ErrNoTree)
	}
	s := session.FromTree(t)
	logger.Debugf("Read tree %q with %d terminals", p.Path(project.Tree), len(s.TipNames()))

	st, err := p.Store()
	if err != nil {
		return nil, err
	}
	if err := s.Restore(ctx, st); err != nil {
		logger.Warnf("Saved state not restored: %v", err)
	}
	if r := s.Rooting(); r != "" {
		logger.Debugf("Restored rooting %q", r)
	}

	return &Workspace{
		Project: p,
		Session: s,
		Store:   st,
		logger:  logger,
	}, nil
}

// Save writes the state of the tree view
// into the project store.
func (w *Workspace) Save(ctx context.Context) error {
	if w.Project.Path(project.Store) == "" {
		w.logger.Warnf("Project %q without store: state will not be saved", w.Project.Name())
		return nil
	}
	if err := w.Session.Save(ctx, w.Store); err != nil {
		return fmt.Errorf("while saving state to %q: %v", w.Project.Path(project.Store), err)
	}
	w.logger.Debugf("Saved state to %q", w.Project.Path(project.Store))
	return nil
}

// Close closes the project store.
func (w *Workspace) Close() error {
	return w.Store.Close()
}
