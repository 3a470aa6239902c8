package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenPen(t *testing.T) {
	s := NewScreen(10, 2)

	s.SetPen(ColorRed)
	s.DrawText(0, 0, "ab")
	s.SetPen(ColorDefault)
	s.Set(2, 0, 'c')

	if got := s.GetCell(0, 0).Color; got != ColorRed {
		t.Errorf("cell (0,0) color = %d, want %d", got, ColorRed)
	}
	if got := s.GetCell(1, 0).Color; got != ColorRed {
		t.Errorf("cell (1,0) color = %d, want %d", got, ColorRed)
	}
	if got := s.GetCell(2, 0).Color; got != ColorDefault {
		t.Errorf("cell (2,0) color = %d, want default", got)
	}

	s.Clear()
	s.Set(0, 1, 'x')
	if got := s.GetCell(0, 1).Color; got != ColorDefault {
		t.Errorf("Clear should reset the pen, got color %d", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score: 4")

	if got := s.Row(1); !strings.HasPrefix(got, "  Score: 4") {
		t.Errorf("Row(1) = %q, want prefix %q", got, "  Score: 4")
	}

	// Clipped at the right edge
	s.DrawText(18, 2, "abc")
	if s.Get(18, 2) != 'a' || s.Get(19, 2) != 'b' {
		t.Errorf("clipped text not drawn: %q", s.Row(2))
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "┌─┐")

	if got := s.Row(0); got != "    ┌─┐    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	want := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, want %q", y, got, line)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#')

	if got := s.Row(1); got != " ###  " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(3); got != "      " {
		t.Errorf("Row(3) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "2048")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("Resize dims = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "20" {
		t.Errorf("Row(0) after shrink = %q, want %q", got, "20")
	}

	s.Resize(4, 1)
	if got := s.Row(0); got != "20  " {
		t.Errorf("Row(0) after grow = %q, want %q", got, "20  ")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("out of range Row = %q", got)
	}
}
