package zipper_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-plate/platetest"
	"github.com/signadot/go-plate/zipper"
)

func height(e platetest.Expr) int {
	up := platetest.ExprPlate()
	h := 0
	for _, c := range up.Children(e) {
		if ch := height(c); ch > h {
			h = ch
		}
	}
	return h + 1
}

func TestTaggedLazyConstruction(t *testing.T) {
	calls := 0
	root := add(mul(val(1), vr("x")), val(2))
	tz := zipper.NewTagged(platetest.ExprPlate(), root, func(e platetest.Expr) int {
		calls++
		return height(e)
	})
	if calls != 1 {
		t.Fatalf("got %d constructor calls at creation, want 1", calls)
	}
	if tz.Tag() != 3 {
		t.Errorf("root height %d, want 3", tz.Tag())
	}
	if err := tz.Down(0); err != nil {
		t.Fatal(err)
	}
	if tz.Tag() != 2 {
		t.Errorf("child height %d, want 2", tz.Tag())
	}
	if calls != 2 {
		t.Fatalf("got %d constructor calls, want 2", calls)
	}
	// revisiting reuses the cached tag
	if err := tz.Up(); err != nil {
		t.Fatal(err)
	}
	if err := tz.Down(0); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("revisit reconstructed the tag, %d calls", calls)
	}
}

func TestTaggedSetTag(t *testing.T) {
	root := add(val(1), val(2))
	tz := zipper.NewTagged(platetest.ExprPlate(), root, height)
	old := tz.SetTag(42)
	if old != 2 {
		t.Errorf("got old tag %d, want 2", old)
	}
	if tz.Tag() != 42 {
		t.Errorf("got tag %d, want 42", tz.Tag())
	}
	if got := tz.ResetTag(); got != 42 {
		t.Errorf("ResetTag returned %d, want 42", got)
	}
	if tz.Tag() != 2 {
		t.Errorf("got tag %d after reset, want 2", tz.Tag())
	}
}

func TestTaggedReplaceInvalidates(t *testing.T) {
	root := add(mul(val(1), vr("x")), val(2))
	tz := zipper.NewTagged(platetest.ExprPlate(), root, height)

	if err := tz.Down(0); err != nil {
		t.Fatal(err)
	}
	if err := tz.Down(0); err != nil {
		t.Fatal(err)
	}
	if tz.Tag() != 1 {
		t.Fatalf("leaf height %d, want 1", tz.Tag())
	}
	if err := tz.Up(); err != nil {
		t.Fatal(err)
	}

	// deepen the subtree under the cursor
	tz.Replace(mul(add(val(1), val(2)), vr("x")))
	if tz.Tag() != 3 {
		t.Errorf("replaced subtree height %d, want 3", tz.Tag())
	}
	if err := tz.Down(0); err != nil {
		t.Fatal(err)
	}
	// stale child tag was dropped with the subtree
	if tz.Tag() != 2 {
		t.Errorf("child height %d after replace, want 2", tz.Tag())
	}

	got := tz.Top()
	want := add(mul(add(val(1), val(2)), vr("x")), val(2))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestTaggedSiblingMoves(t *testing.T) {
	root := add(val(1), val(2))
	tz := zipper.NewTagged(platetest.ExprPlate(), root, height)
	if err := tz.Down(1); err != nil {
		t.Fatal(err)
	}
	tz.SetTag(10)
	if err := tz.Left(); err != nil {
		t.Fatal(err)
	}
	if tz.Tag() != 1 {
		t.Errorf("left sibling tag %d, want 1", tz.Tag())
	}
	if err := tz.Right(); err != nil {
		t.Fatal(err)
	}
	if tz.Tag() != 10 {
		t.Errorf("sibling tag not kept across moves, got %d", tz.Tag())
	}
}
