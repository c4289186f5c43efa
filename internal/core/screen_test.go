package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(34, 14)

	if s.Width() != 34 || s.Height() != 14 {
		t.Fatalf("size = %dx%d, expected 34x14", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); row != strings.Repeat(" ", 34) {
			t.Fatalf("row %d not blank: %q", y, row)
		}
	}
}

func TestScreenIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(4, 3)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetWithColor(p[0], p[1], '#', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
	if s.String() != "    \n    \n    " {
		t.Errorf("out-of-bounds writes leaked into the buffer: %q", s.String())
	}
}

func TestScreenTextIsClipped(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextWithColor(8, 0, "Wall placed", ColorYellow)

	if got := s.Row(0); got != "        Wall" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(8, 0).Color != ColorYellow {
		t.Error("text should keep its color")
	}
	if s.GetCell(7, 0).Color != ColorDefault {
		t.Error("cells before the text should keep the default color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "PLAY")

	if got := strings.TrimRight(s.Row(1), " "); got != "        PLAY" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawBoxAroundGrid(t *testing.T) {
	// A 3x2 grid with two columns per cell, as the studio draws it.
	s := NewScreen(10, 5)
	box := NewRect(1, 1, 3*2+2, 2+2)
	s.DrawBox(box, ColorGray)
	s.DrawRect(box.Inset(1), '.')

	expected := strings.Join([]string{
		"          ",
		" ┌──────┐ ",
		" │......│ ",
		" │......│ ",
		" └──────┘ ",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("box mismatch:\n%s\nexpected:\n%s", got, expected)
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("border should use the box color")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawHLine(1, 0, 5, '─', ColorDim)

	if got := s.Row(0); got != " ─────  " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('~')
	if s.String() != "~~~\n~~~" {
		t.Errorf("Fill: %q", s.String())
	}

	s.SetWithColor(0, 0, '@', ColorCursor)
	s.Clear()
	if s.GetCell(0, 0) != blank {
		t.Errorf("Clear should reset rune and color, got %+v", s.GetCell(0, 0))
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 0, "Lives")
	s.SetWithColor(1, 1, '@', ColorBrightYellow)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if s.Row(0) != "Liv" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}

	s.Resize(8, 5)
	if got := s.GetCell(1, 1); got.Rune != '@' || got.Color != ColorBrightYellow {
		t.Errorf("Resize lost content: %+v", got)
	}
	if s.Row(4) != strings.Repeat(" ", 8) {
		t.Errorf("new rows should be blank, got %q", s.Row(4))
	}
	if s.Row(-1) != strings.Repeat(" ", 8) {
		t.Error("out-of-range row should be blank")
	}
}
