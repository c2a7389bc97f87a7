package plate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	plate "github.com/signadot/go-plate"
	"github.com/signadot/go-plate/platetest"
)

// env is a host with a map field, exercising WalkMap.
type env struct {
	Vars map[string]platetest.Expr
}

func envExprs() plate.Biplate[env, platetest.Expr] {
	return plate.Biplate[env, platetest.Expr]{
		Plate: func(e env) ([]platetest.Expr, func([]platetest.Expr) env) {
			b := plate.NewBuilder[platetest.Expr]()
			vars := plate.WalkMap(b, plate.Refl(platetest.ExprPlate()), e.Vars)
			return plate.Build(b, func() env {
				return env{Vars: vars()}
			})
		},
		To: platetest.ExprPlate(),
	}
}

func TestBuilderSegments(t *testing.T) {
	b := plate.NewBuilder[platetest.Expr]()
	cond := plate.Target(b, vr("x"))
	then := plate.Walk(b, platetest.StmtExprs(), assign("y", val(1)))
	cs, rebuild := plate.Build(b, func() platetest.Stmt {
		return &platetest.If{Cond: cond(), Then: then(), Else: &platetest.Sequence{}}
	})
	if d := cmp.Diff([]platetest.Expr{vr("x"), val(1)}, cs); d != "" {
		t.Fatalf("children differ (-want +got):\n%s", d)
	}
	got := rebuild([]platetest.Expr{val(7), val(8)})
	want := platetest.Stmt(&platetest.If{
		Cond: val(7),
		Then: assign("y", val(8)),
		Else: &platetest.Sequence{},
	})
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestBuildArity(t *testing.T) {
	b := plate.NewBuilder[platetest.Expr]()
	rhs := plate.Target(b, val(1))
	_, rebuild := plate.Build(b, func() platetest.Stmt {
		return assign("x", rhs())
	})
	defer func() {
		if recover() == nil {
			t.Errorf("no panic on wrong children count")
		}
	}()
	rebuild(nil)
}

func TestWalkSliceOrder(t *testing.T) {
	bi := platetest.StmtExprs()
	in := platetest.Stmt(&platetest.Sequence{Stmts: []platetest.Stmt{
		assign("a", val(1)),
		assign("b", val(2)),
		assign("c", val(3)),
	}})
	if d := cmp.Diff([]platetest.Expr{val(1), val(2), val(3)}, bi.ChildrenBi(in)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestWalkMap(t *testing.T) {
	bi := envExprs()
	in := env{Vars: map[string]platetest.Expr{
		"b": val(2),
		"a": val(1),
		"c": add(val(3), vr("x")),
	}}
	// children in sorted key order
	if d := cmp.Diff([]platetest.Expr{val(1), val(2), add(val(3), vr("x"))}, bi.ChildrenBi(in)); d != "" {
		t.Fatalf("(-want +got):\n%s", d)
	}
	got := bi.TransformBi(in, func(e platetest.Expr) platetest.Expr {
		if v, ok := e.(*platetest.Val); ok {
			return val(v.N * 10)
		}
		return e
	})
	want := env{Vars: map[string]platetest.Expr{
		"a": val(10),
		"b": val(20),
		"c": add(val(30), vr("x")),
	}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
