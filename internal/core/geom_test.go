package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 22, 22, NewRect(29, 1, 22, 22)},
		{"offset outer", NewRect(10, 2, 20, 10), 10, 4, NewRect(15, 5, 10, 4)},
		{"larger than outer", NewRect(0, 0, 10, 10), 30, 30, NewRect(0, 0, 30, 30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.outer.Centered(tc.w, tc.h)
			if result != tc.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, result, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: -1}.Add(Point{X: 1, Y: 2})
	if p != (Point{X: 4, Y: 1}) {
		t.Errorf("Add() = %+v, expected {4 1}", p)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"cyan", ColorCyan, true},
		{" Orange ", ColorOrange, true},
		{"purple", ColorMagenta, true},
		{"magenta", ColorMagenta, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := ParseColor(tc.name)
			if c != tc.expected || ok != tc.ok {
				t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, c, ok, tc.expected, tc.ok)
			}
		})
	}

	if ColorRed.String() != "red" {
		t.Errorf("ColorRed.String() = %q, expected \"red\"", ColorRed.String())
	}
}
