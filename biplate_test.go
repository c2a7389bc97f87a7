package plate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	plate "github.com/signadot/go-plate"
	"github.com/signadot/go-plate/platetest"
)

func assign(name string, rhs platetest.Expr) platetest.Stmt {
	return &platetest.Assign{Name: name, Rhs: rhs}
}

func TestReflexiveBase(t *testing.T) {
	bi := plate.Refl(platetest.ExprPlate())
	in := add(val(1), val(2))
	cs, rebuild := bi.ContextBi(in)
	if d := cmp.Diff([]platetest.Expr{in}, cs); d != "" {
		t.Fatalf("a value contains itself (-want +got):\n%s", d)
	}
	if d := cmp.Diff(val(9), rebuild([]platetest.Expr{val(9)})); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestChildrenBiTopMost(t *testing.T) {
	bi := platetest.StmtExprs()
	want := []platetest.Expr{
		val(0),
		add(vr("x"), val(10)),
		vr("x"),
		add(vr("x"), val(10)),
	}
	if d := cmp.Diff(want, bi.ChildrenBi(platetest.PaperStmt())); d != "" {
		t.Errorf("top-most expressions differ (-want +got):\n%s", d)
	}
}

func TestUniverseBi(t *testing.T) {
	bi := platetest.StmtExprs()
	got := bi.UniverseBi(platetest.PaperStmt())
	want := []platetest.Expr{
		val(0),
		add(vr("x"), val(10)), vr("x"), val(10),
		vr("x"),
		add(vr("x"), val(10)), vr("x"), val(10),
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("expression universe differs (-want +got):\n%s", d)
	}
}

func TestUniverseBiStrings(t *testing.T) {
	bi := platetest.StmtStrings()
	in := assign("x", vr("y"))
	if d := cmp.Diff([]string{"x", "y"}, bi.UniverseBi(in)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestContextBiRoundtrip(t *testing.T) {
	bi := platetest.StmtExprs()
	in := platetest.PaperStmt()
	cs, rebuild := bi.ContextBi(in)
	if d := cmp.Diff(in, rebuild(cs)); d != "" {
		t.Errorf("rebuild(children) differs (-want +got):\n%s", d)
	}
}

func TestDescendBiIsShallow(t *testing.T) {
	bi := platetest.StmtExprs()
	zero := func(platetest.Expr) platetest.Expr { return val(0) }
	in := assign("x", add(vr("x"), val(10)))
	// the whole Rhs is one top-most target
	want := assign("x", val(0))
	if d := cmp.Diff(want, bi.DescendBi(in, zero)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestTransformBi(t *testing.T) {
	bi := platetest.StmtExprs()
	bump := func(e platetest.Expr) platetest.Expr {
		if v, ok := e.(*platetest.Val); ok {
			return val(v.N + 1)
		}
		return e
	}
	got := bi.TransformBi(platetest.PaperStmt(), bump)
	want := &platetest.Sequence{Stmts: []platetest.Stmt{
		&platetest.While{
			Cond: val(1),
			Body: assign("x", add(vr("x"), val(11))),
		},
		&platetest.If{
			Cond: vr("x"),
			Then: assign("x", add(vr("x"), val(11))),
			Else: &platetest.Sequence{},
		},
	}}
	if d := cmp.Diff(platetest.Stmt(want), got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestTransformBiRename(t *testing.T) {
	bi := platetest.StmtStrings()
	got := bi.TransformBi(assign("x", add(vr("x"), vr("z"))), func(s string) string {
		if s == "x" {
			return "y"
		}
		return s
	})
	want := assign("y", add(vr("y"), vr("z")))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestRewriteBi(t *testing.T) {
	bi := platetest.StmtExprs()
	fold := func(e platetest.Expr) (platetest.Expr, bool) {
		if a, ok := e.(*platetest.Add); ok {
			l, lok := a.Lhs.(*platetest.Val)
			r, rok := a.Rhs.(*platetest.Val)
			if lok && rok {
				return val(l.N + r.N), true
			}
		}
		return e, false
	}
	in := assign("x", add(add(val(1), val(2)), val(3)))
	got := bi.RewriteBi(in, fold)
	if d := cmp.Diff(assign("x", val(6)), got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestHolesBi(t *testing.T) {
	bi := platetest.StmtExprs()
	in := platetest.Stmt(&platetest.If{
		Cond: vr("x"),
		Then: assign("y", val(1)),
		Else: &platetest.Sequence{},
	})
	var kids []platetest.Expr
	var fills []func(platetest.Expr) platetest.Stmt
	for c, fill := range bi.HolesBi(in) {
		kids = append(kids, c)
		fills = append(fills, fill)
	}
	if d := cmp.Diff([]platetest.Expr{vr("x"), val(1)}, kids); d != "" {
		t.Fatalf("(-want +got):\n%s", d)
	}
	got := fills[0](val(7))
	want := platetest.Stmt(&platetest.If{
		Cond: val(7),
		Then: assign("y", val(1)),
		Else: &platetest.Sequence{},
	})
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
