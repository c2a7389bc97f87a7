package gosrc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-plate/shape"
)

func TestLoadStruct(t *testing.T) {
	defs, err := Load("./testdata/paperlang", "Env")
	if err != nil {
		t.Fatal(err)
	}
	str := shape.TypeRef{Name: "string"}
	val := shape.TypeRef{Name: "Val"}
	ptr := shape.TypeRef{Kind: shape.Pointer, Elem: &val}
	want := []shape.TypeDef{{
		Name: "Env",
		Variants: []shape.Variant{{
			Name: "Env",
			Fields: []shape.Field{
				{Name: "Vars", Type: shape.TypeRef{Kind: shape.Map, Key: &str, Elem: &ptr}},
			},
		}},
	}}
	if d := cmp.Diff(want, defs); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestLoadInterface(t *testing.T) {
	defs, err := Load("./testdata/paperlang", "Stmt", "Expr")
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d defs, want 2", len(defs))
	}
	stmt := defs[0]
	var variants []string
	for _, v := range stmt.Variants {
		variants = append(variants, v.Name)
	}
	if d := cmp.Diff([]string{"Assign", "Sequence", "While"}, variants); d != "" {
		t.Fatalf("Stmt variants differ (-want +got):\n%s", d)
	}
	// unexported fields are not described
	while := stmt.Variants[2]
	if len(while.Fields) != 2 {
		t.Errorf("While has %d fields, want 2", len(while.Fields))
	}

	res, err := shape.Resolve(defs, []shape.Target{{Host: "Stmt", To: "Expr"}})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reaches("Stmt", "string") {
		t.Errorf("Stmt should reach string through Assign.Name")
	}
	if res.Reaches("Expr", "Stmt") {
		t.Errorf("Expr should not reach Stmt")
	}
}

func TestLoadUnknownType(t *testing.T) {
	if _, err := Load("./testdata/paperlang", "Block"); !errors.Is(err, shape.ErrUnknownType) {
		t.Errorf("got %v, want ErrUnknownType", err)
	}
}
