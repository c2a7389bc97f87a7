// Package platetest provides the worked example domain used by the tests
// across this module: the statement/expression calculator language from the
// uniplate paper, with hand-written decompositions in the exact form a
// generator would emit.
package platetest

import (
	"fmt"

	plate "github.com/signadot/go-plate"
)

// Stmt is a statement of the example language.
type Stmt interface {
	isStmt()
}

// Expr is an expression of the example language.
type Expr interface {
	isExpr()
}

// Assign binds the value of Rhs to the variable Name.
type Assign struct {
	Name string
	Rhs  Expr
}

// Sequence runs statements in order.
type Sequence struct {
	Stmts []Stmt
}

// If branches on Cond.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// While loops Body while Cond holds.
type While struct {
	Cond Expr
	Body Stmt
}

func (*Assign) isStmt()   {}
func (*Sequence) isStmt() {}
func (*If) isStmt()       {}
func (*While) isStmt()    {}

// Add, Sub, Mul, and Div are the binary arithmetic expressions.
type Add struct{ Lhs, Rhs Expr }
type Sub struct{ Lhs, Rhs Expr }
type Mul struct{ Lhs, Rhs Expr }
type Div struct{ Lhs, Rhs Expr }

// Val is an integer literal.
type Val struct{ N int }

// Var references a variable by name.
type Var struct{ Name string }

func (*Add) isExpr() {}
func (*Sub) isExpr() {}
func (*Mul) isExpr() {}
func (*Div) isExpr() {}
func (*Val) isExpr() {}
func (*Var) isExpr() {}

func mustLen[T any](cs []T, n int) {
	if len(cs) != n {
		panic(fmt.Sprintf("platetest: rebuild given %d children, want %d", len(cs), n))
	}
}

// ExprPlate returns the same-type decomposition of Expr, written by hand in
// the direct style: children and rebuild per variant.
func ExprPlate() plate.Uniplate[Expr] {
	return exprPlate
}

func exprPlate(e Expr) ([]Expr, func([]Expr) Expr) {
	switch e := e.(type) {
	case *Add:
		return []Expr{e.Lhs, e.Rhs}, func(cs []Expr) Expr {
			mustLen(cs, 2)
			return &Add{Lhs: cs[0], Rhs: cs[1]}
		}
	case *Sub:
		return []Expr{e.Lhs, e.Rhs}, func(cs []Expr) Expr {
			mustLen(cs, 2)
			return &Sub{Lhs: cs[0], Rhs: cs[1]}
		}
	case *Mul:
		return []Expr{e.Lhs, e.Rhs}, func(cs []Expr) Expr {
			mustLen(cs, 2)
			return &Mul{Lhs: cs[0], Rhs: cs[1]}
		}
	case *Div:
		return []Expr{e.Lhs, e.Rhs}, func(cs []Expr) Expr {
			mustLen(cs, 2)
			return &Div{Lhs: cs[0], Rhs: cs[1]}
		}
	case *Val:
		return nil, func(cs []Expr) Expr {
			mustLen(cs, 0)
			return e
		}
	case *Var:
		return nil, func(cs []Expr) Expr {
			mustLen(cs, 0)
			return e
		}
	}
	panic(fmt.Sprintf("platetest: unknown Expr variant %T", e))
}

// StmtPlate returns the same-type decomposition of Stmt. Expressions
// contain no statements, so only statement-typed fields contribute.
func StmtPlate() plate.Uniplate[Stmt] {
	return stmtPlate
}

func stmtPlate(s Stmt) ([]Stmt, func([]Stmt) Stmt) {
	switch s := s.(type) {
	case *Assign:
		return nil, func(cs []Stmt) Stmt {
			mustLen(cs, 0)
			return s
		}
	case *Sequence:
		kids := make([]Stmt, len(s.Stmts))
		copy(kids, s.Stmts)
		return kids, func(cs []Stmt) Stmt {
			mustLen(cs, len(kids))
			out := make([]Stmt, len(cs))
			copy(out, cs)
			return &Sequence{Stmts: out}
		}
	case *If:
		return []Stmt{s.Then, s.Else}, func(cs []Stmt) Stmt {
			mustLen(cs, 2)
			return &If{Cond: s.Cond, Then: cs[0], Else: cs[1]}
		}
	case *While:
		return []Stmt{s.Body}, func(cs []Stmt) Stmt {
			mustLen(cs, 1)
			return &While{Cond: s.Cond, Body: cs[0]}
		}
	}
	panic(fmt.Sprintf("platetest: unknown Stmt variant %T", s))
}

// ExprStrings relates expressions to the strings inside them: variable
// names, found through the expression structure.
func ExprStrings() plate.Biplate[Expr, string] {
	return plate.Biplate[Expr, string]{Plate: exprStrings, To: plate.Atom[string]()}
}

func exprStrings(e Expr) ([]string, func([]string) Expr) {
	switch e := e.(type) {
	case *Add:
		b := plate.NewBuilder[string]()
		lhs := plate.Walk(b, ExprStrings(), e.Lhs)
		rhs := plate.Walk(b, ExprStrings(), e.Rhs)
		return plate.Build(b, func() Expr {
			return &Add{Lhs: lhs(), Rhs: rhs()}
		})
	case *Sub:
		b := plate.NewBuilder[string]()
		lhs := plate.Walk(b, ExprStrings(), e.Lhs)
		rhs := plate.Walk(b, ExprStrings(), e.Rhs)
		return plate.Build(b, func() Expr {
			return &Sub{Lhs: lhs(), Rhs: rhs()}
		})
	case *Mul:
		b := plate.NewBuilder[string]()
		lhs := plate.Walk(b, ExprStrings(), e.Lhs)
		rhs := plate.Walk(b, ExprStrings(), e.Rhs)
		return plate.Build(b, func() Expr {
			return &Mul{Lhs: lhs(), Rhs: rhs()}
		})
	case *Div:
		b := plate.NewBuilder[string]()
		lhs := plate.Walk(b, ExprStrings(), e.Lhs)
		rhs := plate.Walk(b, ExprStrings(), e.Rhs)
		return plate.Build(b, func() Expr {
			return &Div{Lhs: lhs(), Rhs: rhs()}
		})
	case *Val:
		b := plate.NewBuilder[string]()
		return plate.Build(b, func() Expr { return e })
	case *Var:
		b := plate.NewBuilder[string]()
		name := plate.Target(b, e.Name)
		return plate.Build(b, func() Expr {
			return &Var{Name: name()}
		})
	}
	panic(fmt.Sprintf("platetest: unknown Expr variant %T", e))
}

// StmtStrings relates statements to the strings inside them: assignment
// targets directly, plus every string reachable through expressions and
// nested statements.
func StmtStrings() plate.Biplate[Stmt, string] {
	return plate.Biplate[Stmt, string]{Plate: stmtStrings, To: plate.Atom[string]()}
}

func stmtStrings(s Stmt) ([]string, func([]string) Stmt) {
	switch s := s.(type) {
	case *Assign:
		b := plate.NewBuilder[string]()
		name := plate.Target(b, s.Name)
		rhs := plate.Walk(b, ExprStrings(), s.Rhs)
		return plate.Build(b, func() Stmt {
			return &Assign{Name: name(), Rhs: rhs()}
		})
	case *Sequence:
		b := plate.NewBuilder[string]()
		stmts := plate.WalkSlice(b, StmtStrings(), s.Stmts)
		return plate.Build(b, func() Stmt {
			return &Sequence{Stmts: stmts()}
		})
	case *If:
		b := plate.NewBuilder[string]()
		cond := plate.Walk(b, ExprStrings(), s.Cond)
		then := plate.Walk(b, StmtStrings(), s.Then)
		els := plate.Walk(b, StmtStrings(), s.Else)
		return plate.Build(b, func() Stmt {
			return &If{Cond: cond(), Then: then(), Else: els()}
		})
	case *While:
		b := plate.NewBuilder[string]()
		cond := plate.Walk(b, ExprStrings(), s.Cond)
		body := plate.Walk(b, StmtStrings(), s.Body)
		return plate.Build(b, func() Stmt {
			return &While{Cond: cond(), Body: body()}
		})
	}
	panic(fmt.Sprintf("platetest: unknown Stmt variant %T", s))
}

// StmtExprs relates statements to the top-most expressions inside them.
// Expression-typed fields contribute directly; statement-typed fields are
// walked into.
func StmtExprs() plate.Biplate[Stmt, Expr] {
	return plate.Biplate[Stmt, Expr]{Plate: stmtExprs, To: ExprPlate()}
}

func stmtExprs(s Stmt) ([]Expr, func([]Expr) Stmt) {
	switch s := s.(type) {
	case *Assign:
		b := plate.NewBuilder[Expr]()
		rhs := plate.Target(b, s.Rhs)
		return plate.Build(b, func() Stmt {
			return &Assign{Name: s.Name, Rhs: rhs()}
		})
	case *Sequence:
		b := plate.NewBuilder[Expr]()
		stmts := plate.WalkSlice(b, StmtExprs(), s.Stmts)
		return plate.Build(b, func() Stmt {
			return &Sequence{Stmts: stmts()}
		})
	case *If:
		b := plate.NewBuilder[Expr]()
		cond := plate.Target(b, s.Cond)
		then := plate.Walk(b, StmtExprs(), s.Then)
		els := plate.Walk(b, StmtExprs(), s.Else)
		return plate.Build(b, func() Stmt {
			return &If{Cond: cond(), Then: then(), Else: els()}
		})
	case *While:
		b := plate.NewBuilder[Expr]()
		cond := plate.Target(b, s.Cond)
		body := plate.Walk(b, StmtExprs(), s.Body)
		return plate.Build(b, func() Stmt {
			return &While{Cond: cond(), Body: body()}
		})
	}
	panic(fmt.Sprintf("platetest: unknown Stmt variant %T", s))
}

// PaperStmt builds the statement used throughout the multitype tests:
//
//	Sequence(
//	  While(Val(0), Assign("x", Add(Var("x"), Val(10)))),
//	  If(Var("x"), Assign("x", Add(Var("x"), Val(10))), Sequence()),
//	)
func PaperStmt() Stmt {
	return &Sequence{Stmts: []Stmt{
		&While{
			Cond: &Val{N: 0},
			Body: &Assign{Name: "x", Rhs: &Add{Lhs: &Var{Name: "x"}, Rhs: &Val{N: 10}}},
		},
		&If{
			Cond: &Var{Name: "x"},
			Then: &Assign{Name: "x", Rhs: &Add{Lhs: &Var{Name: "x"}, Rhs: &Val{N: 10}}},
			Else: &Sequence{},
		},
	}}
}
