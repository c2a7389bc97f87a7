package plate

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Builder assembles a decomposition from per-field segments. A biplate (or
// uniplate) definition creates one Builder per node, contributes each field
// that can reach the target, and finishes with Build:
//
//	b := plate.NewBuilder[string]()
//	name := plate.Target(b, s.Name)            // field of the target type
//	rhs := plate.Walk(b, ExprStrings(), s.Rhs) // field with its own relation
//	return plate.Build(b, func() Stmt {
//		return &Assign{Name: name(), Rhs: rhs()}
//	})
//
// Fields with no path to the target are not contributed; the make closure
// captures their original values unchanged. Each contribution returns an
// accessor that is only valid inside the make closure passed to Build.
type Builder[To any] struct {
	children []To
	repl     []To
}

// NewBuilder returns an empty Builder for target type To.
func NewBuilder[To any]() *Builder[To] {
	return &Builder[To]{}
}

// Target contributes a field whose type is the target type itself. The
// field is one top-most child; the accessor yields its replacement.
func Target[To any](b *Builder[To], v To) func() To {
	i := len(b.children)
	b.children = append(b.children, v)
	return func() To {
		return b.repl[i]
	}
}

// Walk contributes a field whose type has its own biplate relation to the
// target. The field's reachable targets become children of this node; the
// accessor rebuilds the field from their replacements.
func Walk[F, To any](b *Builder[To], bi Biplate[F, To], v F) func() F {
	cs, rebuild := bi.Plate(v)
	start := len(b.children)
	b.children = append(b.children, cs...)
	n := len(cs)
	return func() F {
		return rebuild(b.repl[start : start+n])
	}
}

// WalkSlice contributes a slice field element-wise, preserving element
// order.
func WalkSlice[F, To any](b *Builder[To], bi Biplate[F, To], vs []F) func() []F {
	parts := make([]func() F, len(vs))
	for i, v := range vs {
		parts[i] = Walk(b, bi, v)
	}
	return func() []F {
		out := make([]F, len(parts))
		for i, p := range parts {
			out[i] = p()
		}
		return out
	}
}

// WalkMap contributes the values of a map field in sorted key order, so
// the children sequence stays deterministic.
func WalkMap[K cmp.Ordered, F, To any](b *Builder[To], bi Biplate[F, To], m map[K]F) func() map[K]F {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]func() F, len(keys))
	for i, k := range keys {
		parts[i] = Walk(b, bi, m[k])
	}
	return func() map[K]F {
		out := make(map[K]F, len(keys))
		for i, k := range keys {
			out[k] = parts[i]()
		}
		return out
	}
}

// Build finishes the Builder, returning the collected children and a
// rebuild function. The rebuild function panics when given a sequence of
// the wrong length; otherwise it makes the accessors yield the replacement
// values and calls mk to reconstruct the node.
func Build[F, To any](b *Builder[To], mk func() F) ([]To, func([]To) F) {
	want := len(b.children)
	return b.children, func(repl []To) F {
		if len(repl) != want {
			panic(fmt.Sprintf("plate: rebuild given %d children, want %d", len(repl), want))
		}
		b.repl = repl
		return mk()
	}
}
