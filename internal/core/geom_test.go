package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{0, 0, 10, 10},
			b:        Box{5, 5, 10, 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Box{0, 0, 10, 10},
			b:        Box{15, 0, 10, 10},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Box{0, 0, 10, 10},
			b:        Box{0, 15, 10, 10},
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        Box{0, 0, 10, 10},
			b:        Box{10, 0, 10, 10},
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        Box{0, 0, 10, 10},
			b:        Box{0, 10, 10, 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        Box{0, 0, 20, 20},
			b:        Box{5, 5, 5, 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{0, 0, 10, 10},
			b:        Box{9.99, 9.99, 10, 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := Box{X: 50, Y: 100, W: 44, H: 47}.Inset(5)

	if b.X != 55 || b.Y != 105 || b.W != 34 || b.H != 37 {
		t.Errorf("Inset(5) = %+v", b)
	}
	if b.CenterX() != 72 {
		t.Errorf("CenterX() = %v, expected 72", b.CenterX())
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 5, Y: 10, W: 20, H: 15}

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	if b.CenterY() != 17.5 {
		t.Errorf("CenterY() = %v, expected 17.5", b.CenterY())
	}
}

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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
