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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), 'X', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("DrawText: row 1 = %q", s.Row(1))
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextAlignment(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorWhite)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}

	s.DrawTextRight(0, "42", ColorWhite)
	if s.Get(18, 0) != '4' || s.Get(19, 0) != '2' {
		t.Errorf("DrawTextRight failed, row = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorRed)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("corners not drawn:\n%s", s.String())
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	if s.GetCell(1, 2).Color != ColorRed {
		t.Error("box should use the given color")
	}

	// Empty boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(3, 3, 0, 0), ColorRed)
	if s.Get(3, 3) != ' ' {
		t.Error("empty box should not be drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(3) != "        " {
		t.Errorf("Resized screen should be blank, row 3 = %q", s.Row(3))
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Push(DirLeft, true)
	f.Push(DirLeft, false)

	if !f.Has(ActionPause) || f.Has(ActionQuit) {
		t.Error("Has() reports wrong actions")
	}
	if len(f.Events) != 2 || f.Events[1] != (InputEvent{Direction: DirLeft, Pressed: false}) {
		t.Errorf("Events = %+v", f.Events)
	}

	f.Clear()
	if f.Has(ActionPause) || len(f.Events) != 0 {
		t.Error("Clear() should reset actions and events")
	}
}
