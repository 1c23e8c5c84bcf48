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

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 31, 5},   // within range
		{-1, 0, 31, 0},  // below min
		{32, 0, 31, 31}, // above max
		{0, 0, 31, 0},   // at min
		{31, 0, 31, 31}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		ax, ay, bx, by, expected int
	}{
		{0, 0, 0, 0, 0},
		{5, 5, 5, 6, 1},
		{5, 5, 4, 5, 1},
		{5, 5, 6, 6, 2},
		{0, 31, 31, 0, 62},
	}

	for _, tc := range tests {
		if got := Manhattan(tc.ax, tc.ay, tc.bx, tc.by); got != tc.expected {
			t.Errorf("Manhattan(%d,%d,%d,%d) = %d, expected %d", tc.ax, tc.ay, tc.bx, tc.by, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}
