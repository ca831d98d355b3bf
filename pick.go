package gp

import "math/rand"

// PickWeighted returns an index into weights, chosen with probability
// proportional to its value: one uniform draw in [0, total) mapped onto
// cumulative bands. Shared by the evolution loop (operator choice) and
// by node generators (internal versus leaf constructors).
//
// Weights must be non-negative and sum to something positive; anything
// else is a configuration error and panics.
func PickWeighted(rng *rand.Rand, weights ...int) int {
	total := 0
	for _, w := range weights {
		if w < 0 {
			panic("gp: negative pick weight")
		}
		total += w
	}
	if total <= 0 {
		panic("gp: pick weights sum to zero")
	}

	draw := rng.Intn(total)
	bound := 0
	for i, w := range weights {
		bound += w
		if draw < bound {
			return i
		}
	}
	panic("gp: unreachable")
}
