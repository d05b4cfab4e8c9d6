// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package store implements key/value stores
// used to keep the state of a tree view
// between sessions.
//
// A store location can be:
//
//   - an empty string, for a store in memory
//   - redis://<host>:<port>/<db>, for a Redis server
//   - a file with extension .db or .sqlite, for a SQLite database
//   - any other file name, for a TSV file
package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// Keys used to store the state of a tree view.
const (
	// RenamedTaxa is the key for the renamed taxa,
	// stored as a JSON object
	// of original names to displayed names.
	RenamedTaxa = "phytree.renamed-taxa"

	// Rooting is the key of the last applied rooting.
	Rooting = "phytree.rooting"
)

// ErrNotFound is returned when a key is not in the store.
var ErrNotFound = errors.New("key not found")

// A Store is a key/value store.
type Store interface {
	// Get returns the value of a key.
	// If the key is not defined,
	// it returns ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set sets the value of a key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Close closes the store.
	Close() error
}

// Open opens a store from a location.
func Open(location string) (Store, error) {
	switch {
	case location == "":
		return NewMemory(), nil
	case strings.HasPrefix(location, "redis://"), strings.HasPrefix(location, "rediss://"):
		return OpenRedis(location)
	}

	switch strings.ToLower(filepath.Ext(location)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(location)
	}
	return OpenFile(location)
}
