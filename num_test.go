package gp

import "testing"

func TestTorus(t *testing.T) {
	cases := []struct {
		x, n, want int
	}{
		{0, 32, 0},
		{31, 32, 31},
		{32, 32, 0},
		{33, 32, 1},
		{-1, 32, 31},
		{-31, 32, 1},
		{-32, 32, 0},
		{-33, 32, 31},
		{64, 32, 0},
		{-65, 32, 31},
	}
	for _, c := range cases {
		if got := Torus(c.x, c.n); got != c.want {
			t.Errorf("Torus(%d, %d) = %d, want %d", c.x, c.n, got, c.want)
		}
	}
}

func TestSquare(t *testing.T) {
	if got := Square(-3); got != 9 {
		t.Fatalf("Square(-3) = %v", got)
	}
	if got := Square(0.5); got != 0.25 {
		t.Fatalf("Square(0.5) = %v", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		x, lo, hi, want Number
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.x, c.lo, c.hi, got, c.want)
		}
	}
}
