// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick_test

import (
	"errors"
	"testing"

	"github.com/js-arias/phytree/newick"
)

func TestExtract(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"bare": {
			in:   "  (A:1,(B:1,C:1):1);\n",
			want: "(A:1,(B:1,C:1):1);",
		},
		"second tree": {
			in:   "(A,B);\n(A,C);\n",
			want: "(A,B);",
		},
		"beast annotations": {
			in:   "[&R] ((A[&rate=0.5]:1,B:1)[&height=2.0]:1,C:2);",
			want: "((A:1,B:1):1,C:2);",
		},
		"nexus": {
			in: `#NEXUS
Begin taxa;
	Dimensions ntax=3;
	Taxlabels A B C;
End;
Begin Trees;
	Tree tree1 = [&U] ((A:1,B:1):1,C:2);
	Tree tree2 = (A,(B,C));
End;
`,
			want: "((A:1,B:1):1,C:2);",
		},
		"nexus translate": {
			in: `#NEXUS
begin trees;
	translate
		1 Homo_sapiens,
		2 'Pan troglodytes',
		3 Gorilla
	;
	tree STATE_0 = [&lnP=-123.4] ((1:0.1,2:0.2):0.3,3:0.4);
end;
`,
			want: "((Homo_sapiens:0.1,Pan troglodytes:0.2):0.3,Gorilla:0.4);",
		},
		"quoted semicolon": {
			in:   "('A;B':1,C:2);\n(D,E);\n",
			want: "('A;B':1,C:2);",
		},
		"nexus quoted semicolon": {
			in:   "#NEXUS\nbegin trees;\n\ttree one = ('x;y':1,z:1);\nend;\n",
			want: "('x;y':1,z:1);",
		},
		"nexus translate quoted comma": {
			in: `#NEXUS
begin trees;
	translate
		1 'Acer, red',
		2 'Betula; white',
		3 Quercus
	;
	tree one = ((1:1,2:1):1,3:2);
end;
`,
			want: "(('Acer, red':1,'Betula; white':1):1,Quercus:2);",
		},
	}

	for name, test := range tests {
		got, err := newick.Extract(test.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestExtractUnrecognized(t *testing.T) {
	for _, s := range []string{
		"",
		"A tree of life",
		"(A,B)",
		"#NEXUS\nbegin taxa;\n\tdimensions ntax=2;\nend;\n",
		"#NEXUS\nbegin trees;\nend;\n",
		"('A;B',C)",
	} {
		if _, err := newick.Extract(s); !errors.Is(err, newick.ErrUnrecognizedFormat) {
			t.Errorf("extract %q: got error %v, want %v", s, err, newick.ErrUnrecognizedFormat)
		}
	}
}
