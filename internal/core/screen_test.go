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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
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

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '#', ColorCyan)
	cell := s.GetCell(3, 4)
	if cell.Rune != '#' || cell.Color != ColorCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected {#, ColorCyan}", cell)
	}

	// Plain Set resets the color
	s.Set(3, 4, '#')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should store the default color")
	}

	// Out of bounds returns a blank default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank default", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("after Resize: %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 3) != 'A' {
		t.Error("Resize should preserve content inside the new bounds")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "hello")

	row := s.Row(1)
	if !strings.Contains(row, "hello") {
		t.Errorf("Row(1) = %q, expected to contain \"hello\"", row)
	}

	// Clipped text must not panic
	s.DrawText(18, 1, "overflow")
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
