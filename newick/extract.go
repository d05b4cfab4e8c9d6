// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnrecognizedFormat is returned when a tree description
// is neither a Newick tree
// nor a NEXUS file with a trees block.
var ErrUnrecognizedFormat = errors.New("unrecognized tree format")

var (
	// BEAST-style annotations,
	// as in [&R] or [&height=1.2,rate=0.3].
	annotation = regexp.MustCompile(`\[&[^\]]*\]`)

	treesBlock = regexp.MustCompile(`(?is)\bbegin\s+trees\s*;(.*?)(?:\bend(?:block)?\s*;|$)`)
	treeStmt   = regexp.MustCompile(`(?is)\bu?tree\s+\*?\s*[^=;]*=\s*`)
	translate  = regexp.MustCompile(`(?is)\btranslate\s+`)
)

// Extract returns the Newick string
// of a tree description.
//
// The description can be a bare Newick tree,
// or a NEXUS file with a trees block,
// in which case the first tree statement is used
// and any translation table of the block is applied.
// In both dialects BEAST-style annotations are removed,
// the text is truncated at the first semicolon
// outside a quoted label or a comment,
// and it is anchored to the first open parenthesis.
func Extract(raw string) (string, error) {
	s := annotation.ReplaceAllString(raw, "")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "(") && strings.Contains(s, ";") {
		return anchor(s)
	}

	m := treesBlock.FindStringSubmatch(s)
	if m == nil {
		return "", ErrUnrecognizedFormat
	}
	block := m[1]
	stmt := treeStmt.FindStringIndex(block)
	if stmt == nil {
		return "", ErrUnrecognizedFormat
	}
	nwk, err := anchor(block[stmt[1]:])
	if err != nil {
		return "", err
	}

	if tm := translate.FindStringIndex(block); tm != nil {
		body := block[tm[1]:]
		if i := indexTop(body, ';'); i >= 0 {
			body = body[:i]
		}
		nwk = translateLabels(nwk, readTranslation(body))
	}
	return nwk, nil
}

func anchor(s string) (string, error) {
	i := indexTop(s, ';')
	if i < 0 {
		return "", ErrUnrecognizedFormat
	}
	s = s[:i+1]
	i = indexTop(s, '(')
	if i < 0 {
		return "", ErrUnrecognizedFormat
	}
	return s[i:], nil
}

// IndexTop returns the index of the first instance of c in s
// that is not part of a quoted label or a comment,
// or -1 if there is none.
func indexTop(s string, c byte) int {
	for i := 0; i < len(s); {
		switch s[i] {
		case c:
			return i
		case '\'':
			_, i = scanLabel(s, i)
			continue
		case '"':
			j := strings.IndexByte(s[i+1:], '"')
			if j < 0 {
				return -1
			}
			i += j + 2
			continue
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return -1
			}
			i += j + 1
			continue
		}
		i++
	}
	return -1
}

// SplitTop splits s at each instance of c
// that is not part of a quoted label or a comment.
func splitTop(s string, c byte) []string {
	var fields []string
	for {
		i := indexTop(s, c)
		if i < 0 {
			return append(fields, s)
		}
		fields = append(fields, s[:i])
		s = s[i+1:]
	}
}

// ReadTranslation reads the body of a NEXUS translate command:
// a comma separated list of key and taxon name pairs.
func readTranslation(body string) map[string]string {
	tbl := make(map[string]string)
	for _, e := range splitTop(body, ',') {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		i := strings.IndexFunc(e, isSpace)
		if i < 0 {
			continue
		}
		key := e[:i]
		name := unquote(strings.TrimSpace(e[i:]))
		if name == "" {
			continue
		}
		tbl[key] = name
	}
	return tbl
}

// TranslateLabels replaces the node labels of a Newick string
// using a translation table.
// Branch lengths and comments are kept as they are.
func translateLabels(s string, tbl map[string]string) string {
	if len(tbl) == 0 {
		return s
	}

	var b strings.Builder
	var prev byte
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDelim(c):
			b.WriteByte(c)
			prev = c
			i++
			continue
		case c == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				j = len(s) - i - 1
			}
			b.WriteString(s[i : i+j+1])
			i += j + 1
			continue
		case isSpace(rune(c)):
			b.WriteByte(c)
			i++
			continue
		}

		tok, next := scanLabel(s, i)
		raw := s[i:next]
		if nm, ok := tbl[tok]; ok && prev != ':' {
			raw = quoteName(nm)
		}
		b.WriteString(raw)
		i = next
	}
	return b.String()
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		q := string(s[0])
		return strings.ReplaceAll(s[1:len(s)-1], q+q, q)
	}
	return s
}
