package plate

import (
	"fmt"
	"iter"
)

// Biplate relates a host type F to a target type T nested anywhere inside
// it. Plate returns the top-most values of type T reachable inside a host
// node, in declared field order, with a rebuild function substituting
// replacements back into their original positions. To is the target type's
// own decomposition, used by the operations that recurse past the top-most
// targets.
//
// Note that Biplate[T, T] relates a value to itself, not to its children;
// see Refl.
type Biplate[F, T any] struct {
	Plate func(n F) ([]T, func([]T) F)
	To    Uniplate[T]
}

// Refl is the base case of the biplate relation: a value contains itself.
// The children are the single value and rebuilding substitutes its
// replacement.
func Refl[T any](to Uniplate[T]) Biplate[T, T] {
	return Biplate[T, T]{
		Plate: func(n T) ([]T, func([]T) T) {
			return []T{n}, func(cs []T) T {
				if len(cs) != 1 {
					panic(fmt.Sprintf("plate: reflexive rebuild given %d children, want 1", len(cs)))
				}
				return cs[0]
			}
		},
		To: to,
	}
}

// ChildrenBi returns the top-most values of the target type inside n.
func (bi Biplate[F, T]) ChildrenBi(n F) []T {
	cs, _ := bi.Plate(n)
	return cs
}

// ContextBi returns the top-most target values inside n together with the
// rebuild function substituting replacements back into n.
func (bi Biplate[F, T]) ContextBi(n F) ([]T, func([]T) F) {
	return bi.Plate(n)
}

// WithChildrenBi rebuilds n with the given replacement target values. It
// panics if cs does not have exactly as many elements as ChildrenBi(n).
func (bi Biplate[F, T]) WithChildrenBi(n F, cs []T) F {
	old, rebuild := bi.Plate(n)
	if len(cs) != len(old) {
		panic(fmt.Sprintf("plate: WithChildrenBi given %d children, want %d", len(cs), len(old)))
	}
	return rebuild(cs)
}

// UniverseBi returns every value of the target type inside n, in preorder:
// each top-most target followed by its own same-type descendants.
func (bi Biplate[F, T]) UniverseBi(n F) []T {
	var res []T
	for _, c := range bi.ChildrenBi(n) {
		res = append(res, bi.To.Universe(c)...)
	}
	return res
}

// DescendBi applies f to each top-most target value inside n and rebuilds.
// It does not recurse into the targets themselves; see TransformBi.
func (bi Biplate[F, T]) DescendBi(n F, f func(T) T) F {
	cs, rebuild := bi.Plate(n)
	out := make([]T, len(cs))
	for i, c := range cs {
		out[i] = f(c)
	}
	return rebuild(out)
}

// TransformBi rewrites every target value inside n bottom-up, in a single
// pass, and rebuilds the host.
func (bi Biplate[F, T]) TransformBi(n F, f func(T) T) F {
	return bi.DescendBi(n, func(x T) T {
		return bi.To.Transform(x, f)
	})
}

// RewriteBi applies f to every target value inside n until a full pass
// produces no change, then rebuilds the host. The non-termination hazard of
// Rewrite applies.
func (bi Biplate[F, T]) RewriteBi(n F, f func(T) (T, bool)) F {
	return bi.DescendBi(n, func(x T) T {
		return bi.To.Rewrite(x, f)
	})
}

// HolesBi returns a lazy sequence over the top-most target values inside
// n, each paired with a function rebuilding the host with that value
// replaced.
func (bi Biplate[F, T]) HolesBi(n F) iter.Seq2[T, func(T) F] {
	return func(yield func(T, func(T) F) bool) {
		cs := bi.ChildrenBi(n)
		for i, c := range cs {
			fill := func(x T) F {
				repl := make([]T, len(cs))
				copy(repl, cs)
				repl[i] = x
				return bi.WithChildrenBi(n, repl)
			}
			if !yield(c, fill) {
				return
			}
		}
	}
}
