// Package zipper provides cursors into decomposed trees.
//
// A Zipper is a movable focus on one node of a tree, together with enough
// context (breadcrumbs) to move to the parent, children, and siblings, and
// to rebuild the whole tree from any position. Replacing the focus is O(1)
// regardless of depth, which makes zippers the right tool when a traversal
// performs many edits; rebuilding only happens on the way back up.
//
// A Zipper is a sequential cursor with exclusive ownership of its
// breadcrumb stack. It must not be shared between goroutines; use Clone for
// independent cursors.
package zipper

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	plate "github.com/signadot/go-plate"
)

var (
	// ErrOutOfRange reports a Down call past the last child.
	ErrOutOfRange = errors.New("child index out of range")
	// ErrAtRoot reports an Up call with no parent to move to.
	ErrAtRoot = errors.New("already at root")
	// ErrNoSibling reports a Left or Right call at the first or last
	// sibling, or at the root.
	ErrNoSibling = errors.New("no sibling")
)

// Zipper is a cursor over a tree of T values. The zero value is not usable;
// construct with New.
type Zipper[T any] struct {
	up    plate.Uniplate[T]
	focus T
	path  []segment[T]
}

// segment is one breadcrumb: the focus's siblings on either side, in
// declared order, and the parent's rebuild function.
type segment[T any] struct {
	left  []T
	right []T
	ctx   func([]T) T
}

func (seg *segment[T]) rebuild(focus T) T {
	cs := make([]T, 0, len(seg.left)+1+len(seg.right))
	cs = append(cs, seg.left...)
	cs = append(cs, focus)
	cs = append(cs, seg.right...)
	return seg.ctx(cs)
}

// New returns a Zipper focused on root.
func New[T any](up plate.Uniplate[T], root T) *Zipper[T] {
	return &Zipper[T]{up: up, focus: root}
}

// Focus returns the node under the cursor.
func (z *Zipper[T]) Focus() T {
	return z.focus
}

// Depth returns the number of ancestors of the focus; 0 at the root.
func (z *Zipper[T]) Depth() int {
	return len(z.path)
}

// Index returns the focus's position among its siblings; 0 at the root.
func (z *Zipper[T]) Index() int {
	if len(z.path) == 0 {
		return 0
	}
	return len(z.path[len(z.path)-1].left)
}

// Replace substitutes the focus without moving, returning the old focus.
// Later Up and Top calls rebuild with the new value.
func (z *Zipper[T]) Replace(n T) T {
	old := z.focus
	z.focus = n
	return old
}

// Down moves the focus to the i-th child, in declared order. It returns
// ErrOutOfRange if the focus has no i-th child.
func (z *Zipper[T]) Down(i int) error {
	cs, ctx := z.up(z.focus)
	if i < 0 || i >= len(cs) {
		return fmt.Errorf("%w: %d with %d children", ErrOutOfRange, i, len(cs))
	}
	z.path = append(z.path, segment[T]{
		left:  slices.Clone(cs[:i]),
		right: slices.Clone(cs[i+1:]),
		ctx:   ctx,
	})
	z.focus = cs[i]
	return nil
}

// Up rebuilds the parent from the focus and its stored siblings and moves
// the focus there. It returns ErrAtRoot when the focus is the root.
func (z *Zipper[T]) Up() error {
	if len(z.path) == 0 {
		return ErrAtRoot
	}
	seg := &z.path[len(z.path)-1]
	z.focus = seg.rebuild(z.focus)
	z.path = z.path[:len(z.path)-1]
	return nil
}

// Left moves the focus to the previous sibling, shifting the old focus to
// the unvisited side. It returns ErrNoSibling at the first sibling or at
// the root.
func (z *Zipper[T]) Left() error {
	if len(z.path) == 0 {
		return ErrNoSibling
	}
	seg := &z.path[len(z.path)-1]
	if len(seg.left) == 0 {
		return ErrNoSibling
	}
	next := seg.left[len(seg.left)-1]
	seg.left = seg.left[:len(seg.left)-1]
	seg.right = append([]T{z.focus}, seg.right...)
	z.focus = next
	return nil
}

// Right moves the focus to the next sibling. It returns ErrNoSibling at
// the last sibling or at the root.
func (z *Zipper[T]) Right() error {
	if len(z.path) == 0 {
		return ErrNoSibling
	}
	seg := &z.path[len(z.path)-1]
	if len(seg.right) == 0 {
		return ErrNoSibling
	}
	next := seg.right[0]
	seg.right = seg.right[1:]
	seg.left = append(slices.Clone(seg.left), z.focus)
	z.focus = next
	return nil
}

// Top rebuilds all the way to the root and returns it, leaving the zipper
// focused there.
func (z *Zipper[T]) Top() T {
	for z.Up() == nil {
	}
	return z.focus
}

// Ancestors returns a lazy, restartable sequence of the focus's ancestors,
// from the immediate parent up to the root. Each ancestor is rebuilt from
// the breadcrumb stack; the zipper is not moved.
func (z *Zipper[T]) Ancestors() iter.Seq[T] {
	return func(yield func(T) bool) {
		focus := z.focus
		for i := len(z.path) - 1; i >= 0; i-- {
			focus = z.path[i].rebuild(focus)
			if !yield(focus) {
				return
			}
		}
	}
}

// Siblings returns the focus's left and right siblings as two ordered
// slices, without moving the focus. Both are empty at the root.
func (z *Zipper[T]) Siblings() (left, right []T) {
	if len(z.path) == 0 {
		return nil, nil
	}
	seg := &z.path[len(z.path)-1]
	return slices.Clone(seg.left), slices.Clone(seg.right)
}

// Path returns the child indices leading from the root to the focus.
func (z *Zipper[T]) Path() []int {
	idx := make([]int, len(z.path))
	for i := range z.path {
		idx[i] = len(z.path[i].left)
	}
	return idx
}

// Clone returns an independent cursor at the same position. The clones
// share node values but no breadcrumb state.
func (z *Zipper[T]) Clone() *Zipper[T] {
	path := make([]segment[T], len(z.path))
	for i, seg := range z.path {
		path[i] = segment[T]{
			left:  slices.Clone(seg.left),
			right: slices.Clone(seg.right),
			ctx:   seg.ctx,
		}
	}
	return &Zipper[T]{up: z.up, focus: z.focus, path: path}
}
