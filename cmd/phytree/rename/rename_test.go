// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package rename

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phytree/session"
)

func TestReadNames(t *testing.T) {
	in := `
Acer_rubrum: red maple
Acer_saccharum: "sugar maple"
`
	names, err := readNames(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read names: %v", err)
	}
	want := map[string]string{
		"Acer_rubrum":    "red maple",
		"Acer_saccharum": "sugar maple",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names: got %v, want %v", names, want)
	}

	names, err = readNames(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("empty file: got %v, want no names", names)
	}
}

func TestRenameAll(t *testing.T) {
	s, err := session.New("((Acer_rubrum:1,Acer_saccharum:1):1,Acer_negundo:2);")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	names := map[string]string{
		"Acer_rubrum":    "red maple",
		"Acer_saccharum": "sugar maple",
	}
	if err := renameAll(s, names); err != nil {
		t.Fatalf("rename: %v", err)
	}
	want := []string{"Acer_negundo", "red maple", "sugar maple"}
	if got := s.TipNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("tips: got %v, want %v", got, want)
	}

	dup := map[string]string{"Acer_negundo": "red maple"}
	if err := renameAll(s, dup); !errors.Is(err, session.ErrDuplicateName) {
		t.Errorf("duplicate: got error %v, want %v", err, session.ErrDuplicateName)
	}
}
