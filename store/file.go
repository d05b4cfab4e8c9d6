// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package store

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// File is a store kept in a TSV file.
// The file is rewritten after each change.
type File struct {
	name string
	keys map[string]string
}

var fileHeader = []string{
	"key",
	"value",
}

// OpenFile opens a store kept in a TSV file.
// If the file does not exist,
// it will be created on the first change.
//
// The TSV must contain the following fields:
//
//   - key, the name of the key
//   - value, the value of the key
//
// Here is an example file:
//
//	# phytree state
//	key	value
//	phytree.rooting	@midpoint
func OpenFile(name string) (*File, error) {
	fs := &File{
		name: name,
		keys: make(map[string]string),
	}

	f, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if errors.Is(err, io.EOF) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range fileHeader {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		key := strings.TrimSpace(row[fields["key"]])
		if key == "" {
			continue
		}
		fs.keys[key] = row[fields["value"]]
	}
	return fs, nil
}

// Get returns the value of a key.
func (fs *File) Get(ctx context.Context, key string) (string, error) {
	v, ok := fs.keys[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set sets the value of a key
// and rewrites the file.
func (fs *File) Set(ctx context.Context, key, value string) error {
	fs.keys[key] = value
	return fs.write()
}

// Delete removes a key
// and rewrites the file.
func (fs *File) Delete(ctx context.Context, key string) error {
	if _, ok := fs.keys[key]; !ok {
		return nil
	}
	delete(fs.keys, key)
	return fs.write()
}

// Close is a no-op,
// as the file is written on each change.
func (fs *File) Close() error {
	return nil
}

func (fs *File) write() (err error) {
	f, err := os.Create(fs.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# phytree state\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(fileHeader); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", fs.name, err)
	}

	keys := make([]string, 0, len(fs.keys))
	for k := range fs.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := tsv.Write([]string{k, fs.keys[k]}); err != nil {
			return fmt.Errorf("on file %q: %v", fs.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", fs.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", fs.name, err)
	}
	return nil
}
