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

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy         int
		w, h           int
		worldW, worldH int
		expected       Rect
	}{
		{"centered", 20, 20, 10, 6, 40, 40, NewRect(15, 17, 10, 6)},
		{"clamped to origin", 1, 1, 10, 6, 40, 40, NewRect(0, 0, 10, 6)},
		{"clamped to far edge", 39, 39, 10, 6, 40, 40, NewRect(30, 34, 10, 6)},
		{"world smaller than window", 3, 2, 10, 6, 7, 4, NewRect(0, 0, 7, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Viewport(tc.cx, tc.cy, tc.w, tc.h, tc.worldW, tc.worldH)
			if got != tc.expected {
				t.Errorf("Viewport() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
