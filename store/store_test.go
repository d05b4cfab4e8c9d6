// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/phytree/store"
)

func TestMemory(t *testing.T) {
	testStore(t, "memory", store.NewMemory())
}

func TestFile(t *testing.T) {
	name := "tmp-state-for-test.tab"
	defer os.Remove(name)

	s, err := store.Open(name)
	if err != nil {
		t.Fatalf("unable to open store: %v", err)
	}
	if _, ok := s.(*store.File); !ok {
		t.Fatalf("open %q: got %T, want *store.File", name, s)
	}
	testStore(t, "file", s)

	// values are kept in the file
	ctx := context.Background()
	value := `{"Acer campbellii":"Campbell's \"maple\""}`
	if err := s.Set(ctx, store.RenamedTaxa, value); err != nil {
		t.Fatalf("file: set: %v", err)
	}
	r, err := store.OpenFile(name)
	if err != nil {
		t.Fatalf("unable to reopen store: %v", err)
	}
	if v, err := r.Get(ctx, store.RenamedTaxa); err != nil || v != value {
		t.Errorf("file: reopen: got %q (%v), want %q", v, err, value)
	}
}

func TestSQLite(t *testing.T) {
	name := filepath.Join(t.TempDir(), "state.db")

	s, err := store.Open(name)
	if err != nil {
		t.Fatalf("unable to open store: %v", err)
	}
	if _, ok := s.(*store.SQLite); !ok {
		t.Fatalf("open %q: got %T, want *store.SQLite", name, s)
	}
	testStore(t, "sqlite", s)
	if err := s.Close(); err != nil {
		t.Fatalf("sqlite: close: %v", err)
	}

	r, err := store.OpenSQLite(name)
	if err != nil {
		t.Fatalf("unable to reopen store: %v", err)
	}
	defer r.Close()
	if v, err := r.Get(context.Background(), store.Rooting); err != nil || v != "A" {
		t.Errorf("sqlite: reopen: got %q (%v), want %q", v, err, "A")
	}
}

func TestOpenRedis(t *testing.T) {
	s, err := store.Open("redis://localhost:6379/0")
	if err != nil {
		t.Fatalf("unable to open store: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*store.Redis); !ok {
		t.Errorf("got %T, want *store.Redis", s)
	}

	if _, err := store.OpenRedis("redis://localhost:6379/not-a-db"); err == nil {
		t.Errorf("invalid URL: expecting error")
	}
}

// TestStore sets a key, changes it, and removes another.
// The rooting key is kept with the value "A".
func testStore(t testing.TB, name string, s store.Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, store.Rooting); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("%s: empty store: got error %v, want %v", name, err, store.ErrNotFound)
	}

	if err := s.Set(ctx, store.Rooting, "@midpoint"); err != nil {
		t.Fatalf("%s: set: %v", name, err)
	}
	if err := s.Set(ctx, store.Rooting, "A"); err != nil {
		t.Fatalf("%s: set: %v", name, err)
	}
	if v, err := s.Get(ctx, store.Rooting); err != nil || v != "A" {
		t.Errorf("%s: get: got %q (%v), want %q", name, v, err, "A")
	}

	if err := s.Set(ctx, store.RenamedTaxa, "{}"); err != nil {
		t.Fatalf("%s: set: %v", name, err)
	}
	if err := s.Delete(ctx, store.RenamedTaxa); err != nil {
		t.Fatalf("%s: delete: %v", name, err)
	}
	if _, err := s.Get(ctx, store.RenamedTaxa); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("%s: deleted key: got error %v, want %v", name, err, store.ErrNotFound)
	}
}
