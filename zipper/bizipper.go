package zipper

import (
	"fmt"
	"slices"

	plate "github.com/signadot/go-plate"
)

// BiZipper is a cursor over the values of a target type T inside a host
// value of type F. The host itself can never be the focus (it is not a T);
// the cursor starts at the first reachable target and the host is
// recovered with Root.
type BiZipper[F, T any] struct {
	bi    plate.Biplate[F, T]
	focus T
	top   topSegment[F, T]
	path  []segment[T]
}

// topSegment is the breadcrumb for the host layer, whose rebuild produces
// an F rather than a T.
type topSegment[F, T any] struct {
	left  []T
	right []T
	ctx   func([]T) F
}

// NewBi returns a BiZipper focused on the first target value inside host,
// in declared field order. ok is false when host contains no targets.
func NewBi[F, T any](bi plate.Biplate[F, T], host F) (z *BiZipper[F, T], ok bool) {
	cs, ctx := bi.Plate(host)
	if len(cs) == 0 {
		return nil, false
	}
	return &BiZipper[F, T]{
		bi:    bi,
		focus: cs[0],
		top: topSegment[F, T]{
			right: slices.Clone(cs[1:]),
			ctx:   ctx,
		},
	}, true
}

// Focus returns the target value under the cursor.
func (z *BiZipper[F, T]) Focus() T {
	return z.focus
}

// Depth returns the number of target-typed ancestors of the focus; 0 when
// the focus is one of the host's top-most targets.
func (z *BiZipper[F, T]) Depth() int {
	return len(z.path)
}

// Replace substitutes the focus without moving, returning the old focus.
func (z *BiZipper[F, T]) Replace(n T) T {
	old := z.focus
	z.focus = n
	return old
}

// Down moves the focus to the i-th same-type child of the focus.
func (z *BiZipper[F, T]) Down(i int) error {
	cs, ctx := z.bi.To(z.focus)
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

// Up moves the focus to its target-typed parent. It returns ErrAtRoot when
// the focus is a top-most target: the parent is the host, reachable only
// through Root.
func (z *BiZipper[F, T]) Up() error {
	if len(z.path) == 0 {
		return ErrAtRoot
	}
	seg := &z.path[len(z.path)-1]
	z.focus = seg.rebuild(z.focus)
	z.path = z.path[:len(z.path)-1]
	return nil
}

// Left moves the focus to the previous sibling. At the host layer the
// siblings are the other top-most targets.
func (z *BiZipper[F, T]) Left() error {
	left, right := z.sides()
	if len(*left) == 0 {
		return ErrNoSibling
	}
	next := (*left)[len(*left)-1]
	*left = (*left)[:len(*left)-1]
	*right = append([]T{z.focus}, *right...)
	z.focus = next
	return nil
}

// Right moves the focus to the next sibling.
func (z *BiZipper[F, T]) Right() error {
	left, right := z.sides()
	if len(*right) == 0 {
		return ErrNoSibling
	}
	next := (*right)[0]
	*right = (*right)[1:]
	*left = append(slices.Clone(*left), z.focus)
	z.focus = next
	return nil
}

// Root rebuilds and returns the host, consuming the cursor's position: the
// zipper is left at the first top-most target of the rebuilt host's layer.
func (z *BiZipper[F, T]) Root() F {
	for z.Up() == nil {
	}
	cs := make([]T, 0, len(z.top.left)+1+len(z.top.right))
	cs = append(cs, z.top.left...)
	cs = append(cs, z.focus)
	cs = append(cs, z.top.right...)
	return z.top.ctx(cs)
}

// Clone returns an independent cursor at the same position.
func (z *BiZipper[F, T]) Clone() *BiZipper[F, T] {
	path := make([]segment[T], len(z.path))
	for i, seg := range z.path {
		path[i] = segment[T]{
			left:  slices.Clone(seg.left),
			right: slices.Clone(seg.right),
			ctx:   seg.ctx,
		}
	}
	return &BiZipper[F, T]{
		bi:    z.bi,
		focus: z.focus,
		top: topSegment[F, T]{
			left:  slices.Clone(z.top.left),
			right: slices.Clone(z.top.right),
			ctx:   z.top.ctx,
		},
		path: path,
	}
}

// sides returns the sibling lists of the current layer.
func (z *BiZipper[F, T]) sides() (left, right *[]T) {
	if len(z.path) == 0 {
		return &z.top.left, &z.top.right
	}
	seg := &z.path[len(z.path)-1]
	return &seg.left, &seg.right
}
