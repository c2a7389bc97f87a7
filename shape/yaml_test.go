package shape

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const paperYAML = `
types:
  - name: Stmt
    variants:
      - name: Assign
        fields:
          - name: Name
            type: string
          - name: Rhs
            type: Expr
      - name: Sequence
        fields:
          - name: Stmts
            type: "[]Stmt"
  - name: Expr
    variants:
      - name: Add
        fields:
          - name: Lhs
            type: Expr
          - name: Rhs
            type: Expr
      - name: Var
        fields:
          - name: Name
            type: string
targets:
  - host: Stmt
    to: Expr
`

func TestParseYAML(t *testing.T) {
	defs, targets, err := Parse(strings.NewReader(paperYAML))
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d types, want 2", len(defs))
	}
	if d := cmp.Diff([]Target{{Host: "Stmt", To: "Expr"}}, targets); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if _, err := Resolve(defs, targets); err != nil {
		t.Errorf("parsed description does not resolve: %v", err)
	}
}

func TestParseYAMLFieldsShorthand(t *testing.T) {
	doc := `
types:
  - name: Point
    fields:
      - name: X
        type: int
      - name: Y
        type: int
`
	defs, _, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []TypeDef{{
		Name: "Point",
		Variants: []Variant{{
			Name: "Point",
			Fields: []Field{
				{Name: "X", Type: TypeRef{Name: "int"}},
				{Name: "Y", Type: TypeRef{Name: "int"}},
			},
		}},
	}}
	if d := cmp.Diff(want, defs); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			"unnamed type",
			"types:\n  - variants: []\n",
			ErrBadShape,
		},
		{
			"variants and fields",
			"types:\n  - name: T\n    variants:\n      - name: V\n    fields:\n      - name: F\n        type: int\n",
			ErrBadShape,
		},
		{
			"unnamed field",
			"types:\n  - name: T\n    fields:\n      - type: int\n",
			ErrBadShape,
		},
		{
			"bad field type",
			"types:\n  - name: T\n    fields:\n      - name: F\n        type: 'a b'\n",
			ErrBadTypeRef,
		},
		{
			"incomplete target",
			"targets:\n  - host: T\n",
			ErrBadShape,
		},
		{
			"unknown key",
			"kinds: []\n",
			ErrBadShape,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Parse(strings.NewReader(tc.doc)); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
