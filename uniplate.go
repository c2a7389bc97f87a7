package plate

import (
	"fmt"
	"iter"
)

// Uniplate is the decomposition primitive for a tree-shaped type T.
//
// Applied to a node, it returns the node's immediate same-type children in
// declared field order (empty for leaves) and a rebuild function producing
// a new node from a replacement children sequence. The rebuild function
// panics when given a sequence whose length differs from the extracted one.
type Uniplate[T any] func(n T) ([]T, func([]T) T)

// Plated is implemented by tree types that declare their own decomposition.
type Plated[T any] interface {
	Uniplate() ([]T, func([]T) T)
}

// Of returns the decomposition primitive of a type implementing Plated.
func Of[T Plated[T]]() Uniplate[T] {
	return func(n T) ([]T, func([]T) T) {
		return n.Uniplate()
	}
}

// Atom returns the decomposition of a type with no substructure. Children
// are always empty and rebuilding reproduces the original value. Leaf
// types such as string get their Uniplate this way when they are the
// target of a cross-type traversal.
func Atom[T any]() Uniplate[T] {
	return func(n T) ([]T, func([]T) T) {
		return nil, func(cs []T) T {
			if len(cs) != 0 {
				panic(fmt.Sprintf("plate: atom rebuild given %d children, want 0", len(cs)))
			}
			return n
		}
	}
}

// Children returns the immediate same-type children of n in declared order.
func (up Uniplate[T]) Children(n T) []T {
	cs, _ := up(n)
	return cs
}

// Context returns the children of n together with the rebuild function.
// Applying the rebuild function to the returned children yields a node
// equal to n.
func (up Uniplate[T]) Context(n T) ([]T, func([]T) T) {
	return up(n)
}

// WithChildren rebuilds n with the given replacement children. It panics if
// cs does not have exactly as many elements as Children(n).
func (up Uniplate[T]) WithChildren(n T, cs []T) T {
	old, rebuild := up(n)
	if len(cs) != len(old) {
		panic(fmt.Sprintf("plate: WithChildren given %d children, want %d", len(cs), len(old)))
	}
	return rebuild(cs)
}

// Universe returns n followed by the universe of each child, in child
// order: a preorder flattening of the whole tree.
func (up Uniplate[T]) Universe(n T) []T {
	res := []T{n}
	for _, c := range up.Children(n) {
		res = append(res, up.Universe(c)...)
	}
	return res
}

// Descend applies f to each immediate child of n and rebuilds. f is not
// applied to n itself.
func (up Uniplate[T]) Descend(n T, f func(T) T) T {
	cs, rebuild := up(n)
	out := make([]T, len(cs))
	for i, c := range cs {
		out[i] = f(c)
	}
	return rebuild(out)
}

// Transform rewrites the tree bottom-up in a single pass: every child is
// transformed first, the node is rebuilt from the transformed children, and
// f is applied once to the rebuilt node.
func (up Uniplate[T]) Transform(n T, f func(T) T) T {
	cs, rebuild := up(n)
	out := make([]T, len(cs))
	for i, c := range cs {
		out[i] = up.Transform(c, f)
	}
	return f(rebuild(out))
}

// Rewrite applies f everywhere it can, bottom-up, until a full pass over
// the tree produces no change. f reports whether it rewrote its argument.
//
// The fixpoint loop has no iteration bound. A step function that never
// stops reporting changes makes Rewrite loop forever; termination and
// confluence are the caller's obligation.
func (up Uniplate[T]) Rewrite(n T, f func(T) (T, bool)) T {
	for {
		changed := false
		n = up.Transform(n, func(x T) T {
			if y, ok := f(x); ok {
				changed = true
				return y
			}
			return x
		})
		if !changed {
			return n
		}
	}
}

// Holes returns a lazy sequence over the immediate children of n, each
// paired with a function that rebuilds n with that child replaced.
func (up Uniplate[T]) Holes(n T) iter.Seq2[T, func(T) T] {
	return func(yield func(T, func(T) T) bool) {
		cs := up.Children(n)
		for i, c := range cs {
			fill := func(x T) T {
				repl := make([]T, len(cs))
				copy(repl, cs)
				repl[i] = x
				return up.WithChildren(n, repl)
			}
			if !yield(c, fill) {
				return
			}
		}
	}
}

// Cata folds the tree bottom-up: every child is folded to an R first, then
// f combines the node with its children's results. Transform and Universe
// are special cases of this, the most general traversal.
func Cata[T, R any](up Uniplate[T], n T, f func(T, []R) R) R {
	cs := up.Children(n)
	rs := make([]R, len(cs))
	for i, c := range cs {
		rs[i] = Cata(up, c, f)
	}
	return f(n, rs)
}
