package core

import "testing"

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  Color
	}{
		{0, ColorDefault},
		{1, ColorDefault},
		{2, ColorWhite},
		{4, ColorYellow},
		{8, ColorOrange},
		{1024, ColorBrightYellow},
		{2048, ColorBrightYellow},
		{131072, ColorBrightYellow},
	}

	for _, tc := range tests {
		if got := TileColor(tc.value); got != tc.want {
			t.Errorf("TileColor(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("Has() mismatch: %+v", f.Actions)
	}
	if f.Empty() {
		t.Error("frame with an action should not be empty")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}

	if ActionRight.String() != "Right" || Action(99).String() != "Unknown" {
		t.Error("Action.String() mismatch")
	}
}
