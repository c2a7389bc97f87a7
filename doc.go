// Package plate provides generic traversal, querying, and rewriting over
// tree-shaped data such as abstract syntax trees.
//
// # Overview
//
// Writing a recursive-descent function for every new operation over an AST
// (and revisiting all of them whenever a variant is added) is boilerplate
// that this package eliminates. Each tree type declares a single
// decomposition primitive: how to extract its immediate same-type children,
// and how to rebuild the node from replacement children. Every traversal in
// this package is defined once, in terms of that primitive alone.
//
// # Decomposition
//
// A decomposition for a type T is a value of type [Uniplate]:
//
//	var exprPlate plate.Uniplate[Expr] = func(e Expr) ([]Expr, func([]Expr) Expr) { ... }
//
// The function returns the immediate same-type children of a node in
// declared field order, together with a rebuild function that produces a
// new node from a replacement children sequence of the same length. Two
// laws must hold:
//
//   - roundtrip: rebuilding from the extracted children yields a node equal
//     to the original;
//   - substitution: the children of a rebuilt node are the replacement
//     sequence.
//
// Types may instead implement the [Plated] interface and obtain their
// primitive with [Of]. Leaf types with no substructure (for example string
// targets of cross-type traversals) use [Atom].
//
// # Traversals
//
// With a decomposition in hand:
//
//	all := exprPlate.Universe(e)                  // preorder flattening
//	e2 := exprPlate.Transform(e, double)          // bottom-up, single pass
//	e3 := exprPlate.Rewrite(e, fold)              // transform to fixpoint
//	n := plate.Cata(exprPlate, e, count)          // bottom-up fold
//
// Rewrite applies its step function until a full pass changes nothing. The
// engine performs no cycle detection: a step function that always reports a
// change never terminates. Convergence is a caller obligation.
//
// # Cross-type traversal
//
// A [Biplate] relates a host type to a target type nested anywhere inside
// it: Biplate[Stmt, string] reaches every string in a statement, whether it
// is a direct field or lives several levels down inside an expression. The
// biplate operations (ChildrenBi, UniverseBi, TransformBi, ...) mirror the
// same-type ones. A value always contains itself: [Refl] is the base case
// relating a type to itself.
//
// Biplate definitions compose per field with [Builder]: fields of the
// target type contribute directly ([Target]), fields whose type has its own
// relation to the target are walked into ([Walk], [WalkSlice], [WalkMap]),
// and fields with no path to the target are captured unchanged by the
// rebuild closure. The github.com/signadot/go-plate/shape package computes
// which of the three cases applies to each field of a declared type shape.
//
// # Errors
//
// Traversal has no recoverable error category. Calling a rebuild function
// with a sequence of the wrong length is a contract violation and panics.
//
// # Related packages
//
//   - github.com/signadot/go-plate/zipper - cursor-based navigation and editing
//   - github.com/signadot/go-plate/shape - biplate resolution over type shapes
//   - github.com/signadot/go-plate/shape/gosrc - shapes extracted from Go source
package plate
