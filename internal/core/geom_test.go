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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1.0 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1.0", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0.0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0.0", got)
	}
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %v, expected 0.5", got)
	}
}

func TestDirectionPriority(t *testing.T) {
	f := NewInputFrame()
	if f.Direction() != ActionNone {
		t.Errorf("empty frame Direction() = %v, expected ActionNone", f.Direction())
	}

	f.Set(ActionRight)
	if f.Direction() != ActionRight {
		t.Errorf("Direction() = %v, expected ActionRight", f.Direction())
	}

	// Up wins when multiple directions land on the same frame
	f.Set(ActionUp)
	if f.Direction() != ActionUp {
		t.Errorf("Direction() = %v, expected ActionUp", f.Direction())
	}
}
