// Package paperlang is a fixture for shape extraction tests.
package paperlang

type Stmt interface {
	isStmt()
}

type Expr interface {
	isExpr()
}

type Assign struct {
	Name string
	Rhs  Expr
}

type Sequence struct {
	Stmts []Stmt
}

type While struct {
	Cond Expr
	Body Stmt

	count int
}

func (*Assign) isStmt()   {}
func (*Sequence) isStmt() {}
func (*While) isStmt()    {}

type Add struct{ Lhs, Rhs Expr }

type Val struct{ N int }

type Var struct{ Name string }

func (*Add) isExpr() {}
func (*Val) isExpr() {}
func (*Var) isExpr() {}

type Env struct {
	Vars map[string]*Val
}
