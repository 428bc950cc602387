package nav

import "testing"

func TestCursorClamping(t *testing.T) {
	t.Parallel()
	c := New(12)

	if c.Previous() {
		t.Fatal("Previous at 0 should not move")
	}
	if c.Pos() != 0 {
		t.Fatalf("pos = %d, want 0", c.Pos())
	}

	for i := 0; i < 20; i++ {
		c.Next()
	}
	if c.Pos() != 11 {
		t.Fatalf("pos after overshoot = %d, want 11", c.Pos())
	}
	if c.Next() {
		t.Fatal("Next at last position should not move")
	}
}

func TestCursorGoTo(t *testing.T) {
	t.Parallel()
	c := New(12)

	if !c.GoTo(5) || c.Pos() != 5 {
		t.Fatalf("GoTo(5): pos = %d, want 5", c.Pos())
	}
	if c.GoTo(-1) {
		t.Fatal("GoTo(-1) should be a no-op")
	}
	if c.GoTo(12) {
		t.Fatal("GoTo(size) should be a no-op")
	}
	if c.Pos() != 5 {
		t.Fatalf("pos after out-of-range GoTo = %d, want 5", c.Pos())
	}
}

func TestCursorRestoreClamps(t *testing.T) {
	t.Parallel()
	c := New(3)

	c.Restore(99)
	if c.Pos() != 2 {
		t.Fatalf("Restore(99): pos = %d, want 2", c.Pos())
	}
	c.Restore(-4)
	if c.Pos() != 0 {
		t.Fatalf("Restore(-4): pos = %d, want 0", c.Pos())
	}
}

func TestCursorEnds(t *testing.T) {
	t.Parallel()
	c := New(3)
	if !c.AtStart() || c.AtEnd() {
		t.Fatal("new cursor should be at start")
	}
	c.GoTo(2)
	if !c.AtEnd() {
		t.Fatal("cursor at size-1 should be at end")
	}
}
