package zipper

import (
	"iter"

	plate "github.com/signadot/go-plate"
)

// Contexts returns a lazy preorder sequence over every node of the tree,
// each paired with a function that rebuilds the root with that node
// replaced. The fill functions are independent of one another and of the
// iteration; each call rebuilds from its own cloned cursor.
//
// For many edits in one traversal, drive a Zipper directly instead: fill
// rebuilds the root on every call.
func Contexts[T any](up plate.Uniplate[T], root T) iter.Seq2[T, func(T) T] {
	return func(yield func(T, func(T) T) bool) {
		z := New(up, root)
		for {
			snap := z.Clone()
			fill := func(x T) T {
				zz := snap.Clone()
				zz.Replace(x)
				return zz.Top()
			}
			if !yield(z.Focus(), fill) {
				return
			}
			if !step(z) {
				return
			}
		}
	}
}

// ContextsBi is the cross-type variant of Contexts: a lazy preorder
// sequence over every target value inside host, each paired with a
// function rebuilding the host with that value replaced.
func ContextsBi[F, T any](bi plate.Biplate[F, T], host F) iter.Seq2[T, func(T) F] {
	return func(yield func(T, func(T) F) bool) {
		z, ok := NewBi(bi, host)
		if !ok {
			return
		}
		for {
			snap := z.Clone()
			fill := func(x T) F {
				zz := snap.Clone()
				zz.Replace(x)
				return zz.Root()
			}
			if !yield(z.Focus(), fill) {
				return
			}
			if !step(z) {
				return
			}
		}
	}
}

// navigator is the movement surface shared by Zipper and BiZipper.
type navigator interface {
	Down(int) error
	Right() error
	Up() error
}

// step moves a preorder walk one position: down if possible, otherwise
// right, climbing until a right move succeeds. Returns false when the walk
// is exhausted.
func step(z navigator) bool {
	if z.Down(0) == nil {
		return true
	}
	for {
		if z.Right() == nil {
			return true
		}
		if z.Up() != nil {
			return false
		}
	}
}
