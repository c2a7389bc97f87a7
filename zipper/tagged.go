package zipper

import plate "github.com/signadot/go-plate"

// tagNode mirrors one visited tree node. Children are keyed by child index
// and created lazily as the cursor first reaches them.
type tagNode[D any] struct {
	data     D
	parent   *tagNode[D]
	children map[int]*tagNode[D]
}

// TaggedZipper is a Zipper that attaches a tag of type D to every node the
// cursor visits. Tags are built lazily by the constructor function given at
// creation and persist as the cursor moves away and back.
//
// Replacing the focus invalidates the tags of the whole focused subtree,
// since its structure may have changed; the constructor runs again as the
// subtree is revisited. Direct mutation of the underlying tree is not
// offered for the same reason.
type TaggedZipper[T, D any] struct {
	z    *Zipper[T]
	node *tagNode[D]
	mk   func(T) D
}

// NewTagged returns a TaggedZipper focused on root. mk constructs the tag
// for a node the first time the cursor reaches it.
func NewTagged[T, D any](up plate.Uniplate[T], root T, mk func(T) D) *TaggedZipper[T, D] {
	return &TaggedZipper[T, D]{
		z:    New(up, root),
		node: &tagNode[D]{data: mk(root), children: map[int]*tagNode[D]{}},
		mk:   mk,
	}
}

// Focus returns the node under the cursor.
func (t *TaggedZipper[T, D]) Focus() T {
	return t.z.Focus()
}

// Depth returns the number of ancestors of the focus.
func (t *TaggedZipper[T, D]) Depth() int {
	return t.z.Depth()
}

// Tag returns the tag of the focus.
func (t *TaggedZipper[T, D]) Tag() D {
	return t.node.data
}

// SetTag replaces the tag of the focus, returning the old tag.
func (t *TaggedZipper[T, D]) SetTag(d D) D {
	old := t.node.data
	t.node.data = d
	return old
}

// ResetTag reconstructs the tag of the focus with the constructor,
// returning the old tag.
func (t *TaggedZipper[T, D]) ResetTag() D {
	return t.SetTag(t.mk(t.z.Focus()))
}

// Replace substitutes the focus without moving, returning the old focus.
// The tags of the focused subtree are invalidated.
func (t *TaggedZipper[T, D]) Replace(n T) T {
	old := t.z.Replace(n)
	t.InvalidateSubtree()
	return old
}

// InvalidateSubtree drops the tags of the focus and all its descendants.
// Their constructors run again as the subtree is revisited.
func (t *TaggedZipper[T, D]) InvalidateSubtree() {
	fresh := &tagNode[D]{
		data:     t.mk(t.z.Focus()),
		parent:   t.node.parent,
		children: map[int]*tagNode[D]{},
	}
	if p := t.node.parent; p != nil {
		p.children[t.z.Index()] = fresh
	}
	t.node = fresh
}

// Siblings returns the focus's left and right siblings as two ordered
// slices, without moving the focus.
func (t *TaggedZipper[T, D]) Siblings() (left, right []T) {
	return t.z.Siblings()
}

// Down moves the focus to the i-th child.
func (t *TaggedZipper[T, D]) Down(i int) error {
	if err := t.z.Down(i); err != nil {
		return err
	}
	t.node = t.childTag(t.node, i)
	return nil
}

// Up moves the focus to the parent.
func (t *TaggedZipper[T, D]) Up() error {
	if err := t.z.Up(); err != nil {
		return err
	}
	t.node = t.node.parent
	return nil
}

// Left moves the focus to the previous sibling.
func (t *TaggedZipper[T, D]) Left() error {
	if err := t.z.Left(); err != nil {
		return err
	}
	t.node = t.childTag(t.node.parent, t.z.Index())
	return nil
}

// Right moves the focus to the next sibling.
func (t *TaggedZipper[T, D]) Right() error {
	if err := t.z.Right(); err != nil {
		return err
	}
	t.node = t.childTag(t.node.parent, t.z.Index())
	return nil
}

// Top rebuilds all the way to the root and returns it.
func (t *TaggedZipper[T, D]) Top() T {
	for t.Up() == nil {
	}
	return t.z.Focus()
}

// childTag returns parent's tag node for child index i, constructing it
// from the current focus if the cursor has not been there yet.
func (t *TaggedZipper[T, D]) childTag(parent *tagNode[D], i int) *tagNode[D] {
	if n, ok := parent.children[i]; ok {
		return n
	}
	n := &tagNode[D]{
		data:     t.mk(t.z.Focus()),
		parent:   parent,
		children: map[int]*tagNode[D]{},
	}
	parent.children[i] = n
	return n
}
