// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick reads and writes phylogenetic trees
// in Newick format,
// either bare or embedded in a NEXUS trees block.
package newick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/js-arias/phytree/phylo"
)

// ErrMalformed is returned when a Newick string
// has unbalanced parentheses.
var ErrMalformed = errors.New("malformed newick tree")

// Read reads a tree from a tree description
// (Newick or NEXUS)
// and stamps the original name of each node.
//
// If the description is empty,
// it returns a nil tree and no error.
func Read(raw string) (*phylo.Node, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	s, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	phylo.SetOriginalNames(t)
	return t, nil
}

// Parse parses a Newick string.
//
// A token that follows a colon is read as the branch length
// of the preceding node;
// if the number is invalid,
// the length is set to 0.
// Any other token is the name of the node.
// A semicolon ends the parsing.
//
// If the root is unnamed and has a single child,
// the child is used as the root.
//
// If the string is empty,
// it returns a nil tree and no error.
func Parse(s string) (*phylo.Node, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	root := &phylo.Node{}
	t := root
	var stack []*phylo.Node
	var prev byte

scan:
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '(':
			d := &phylo.Node{}
			t.Children = append(t.Children, d)
			stack = append(stack, t)
			t = d
		case c == ',':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: at position %d: comma outside a group", ErrMalformed, i)
			}
			d := &phylo.Node{}
			p := stack[len(stack)-1]
			p.Children = append(p.Children, d)
			t = d
		case c == ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: at position %d: unexpected closing parenthesis", ErrMalformed, i)
			}
			t = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case c == ':':
		case c == ';':
			break scan
		case c == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: at position %d: unclosed comment", ErrMalformed, i)
			}
			i += j + 1
			continue
		case isSpace(rune(c)):
			i++
			continue
		default:
			tok, next := scanLabel(s, i)
			if prev == ':' {
				t.Length = parseLength(tok)
			} else {
				t.Name = tok
			}
			i = next
			prev = 0
			continue
		}
		prev = c
		i++
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: %d unclosed parenthesis", ErrMalformed, len(stack))
	}

	for root.Name == "" && len(root.Children) == 1 {
		root = root.Children[0]
	}
	return root, nil
}

// ParseLength reads a branch length.
// Invalid numbers are read as 0.
func parseLength(tok string) float64 {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0
	}
	return v
}

// ScanLabel reads a label that starts at position i.
// It returns the label,
// without quotes and surrounding spaces,
// and the position just after the label.
func scanLabel(s string, i int) (string, int) {
	if s[i] == '\'' {
		var b strings.Builder
		j := i + 1
		for j < len(s) {
			if s[j] == '\'' {
				if j+1 < len(s) && s[j+1] == '\'' {
					b.WriteByte('\'')
					j += 2
					continue
				}
				j++
				break
			}
			b.WriteByte(s[j])
			j++
		}
		return b.String(), j
	}

	j := i
	for j < len(s) && !isDelim(s[j]) && s[j] != '[' {
		j++
	}
	return strings.TrimSpace(s[i:j]), j
}

func isDelim(c byte) bool {
	switch c {
	case '(', ')', ',', ':', ';':
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
