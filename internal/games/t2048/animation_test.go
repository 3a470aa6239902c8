package t2048

import "testing"

func TestAnimatorSlide(t *testing.T) {
	a := NewAnimator(4, 2, 2)
	v := a.NewVisual(1)

	v.Spawn(Position{0, 0}, 2)
	a.FinishAll()

	sig := v.AnimateTo(Position{0, 3})
	if sig.IsResolved() {
		t.Fatal("slide resolved before any tick")
	}
	if !a.Busy() {
		t.Error("animator should be busy during a slide")
	}

	a.Advance()
	a.Advance()
	mid := a.Sprites()[0]
	if mid.Kind != AnimSlide {
		t.Fatalf("kind = %v, want slide", mid.Kind)
	}
	if mid.Col <= 0 || mid.Col >= 3 {
		t.Errorf("mid-slide col = %v, want strictly between 0 and 3", mid.Col)
	}

	a.Advance()
	a.Advance()
	if !sig.IsResolved() {
		t.Fatal("slide not resolved after its duration")
	}
	end := a.Sprites()[0]
	if end.Col != 3 || end.Row != 0 || end.Kind != AnimNone {
		t.Errorf("final sprite = %+v, want resting at (0,3)", end)
	}
	if a.Busy() {
		t.Error("animator busy after every animation finished")
	}
}

func TestAnimatorZeroDurationResolvesAtOnce(t *testing.T) {
	a := NewAnimator(0, 0, 0)
	v := a.NewVisual(1)
	if !v.Spawn(Position{1, 1}, 4).IsResolved() {
		t.Error("zero-length spawn should resolve immediately")
	}
	if !v.AnimateTo(Position{1, 0}).IsResolved() {
		t.Error("zero-length slide should resolve immediately")
	}
	s := a.Sprites()[0]
	if s.Col != 0 || s.Row != 1 {
		t.Errorf("sprite at (%v,%v), want (1,0)", s.Row, s.Col)
	}
}

func TestAnimatorSupersedeResolvesPrevious(t *testing.T) {
	a := NewAnimator(5, 5, 5)
	v := a.NewVisual(1)
	spawn := v.Spawn(Position{0, 0}, 2)
	merge := v.AnimateMerge(4)
	if !spawn.IsResolved() {
		t.Error("superseded animation must resolve")
	}
	if merge.IsResolved() {
		t.Error("new animation should still be running")
	}
	if got := a.Sprites()[0].Value; got != 4 {
		t.Errorf("Value = %d, want 4", got)
	}
}

func TestAnimatorRemove(t *testing.T) {
	a := NewDefaultAnimator()
	v1 := a.NewVisual(1)
	v2 := a.NewVisual(2)
	v1.Spawn(Position{0, 0}, 2)
	sig := v2.Spawn(Position{0, 1}, 2)

	v2.Remove()
	if !sig.IsResolved() {
		t.Error("removing a sprite must resolve its running animation")
	}
	sprites := a.Sprites()
	if len(sprites) != 1 || sprites[0].ID != 1 {
		t.Errorf("sprites = %+v, want only id 1", sprites)
	}
}

func TestEaseOutQuad(t *testing.T) {
	if easeOutQuad(0) != 0 || easeOutQuad(1) != 1 {
		t.Error("easeOutQuad must map 0->0 and 1->1")
	}
	if easeOutQuad(0.5) <= 0.5 {
		t.Error("easeOutQuad should run ahead of linear at the midpoint")
	}
}
