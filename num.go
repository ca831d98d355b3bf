package gp

// Number is the numeric type used by all fitness scores and simulations.
type Number = float32

// Torus wraps x into [0, n), so coordinates that walk off one edge of an
// n-sized board come back on the other.
func Torus(x, n int) int {
	k := 0
	if x < 0 {
		k = -x/n + 1
	}
	return (x + k*n) % n
}

// Square returns x*x.
func Square(x Number) Number { return x * x }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi Number) Number {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
