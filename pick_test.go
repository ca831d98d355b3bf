package gp

import (
	"math/rand"
	"testing"
)

func TestPickWeightedSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if got := PickWeighted(rng, 7); got != 0 {
			t.Fatalf("single weight: picked %d", got)
		}
	}
}

func TestPickWeightedZeroNeverPicked(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		got := PickWeighted(rng, 0, 5, 0, 5)
		if got != 1 && got != 3 {
			t.Fatalf("picked zero-weight index %d", got)
		}
	}
}

func TestPickWeightedProportions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := make([]int, 3)
	for i := 0; i < 1000; i++ {
		counts[PickWeighted(rng, 1, 1, 98)]++
	}
	if counts[2] < 900 {
		t.Fatalf("heavy index picked %d/1000 times", counts[2])
	}
	if counts[0]+counts[1] == 0 {
		t.Fatalf("light indices never picked")
	}
}

func TestPickWeightedPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mustPanic(t, "negative weight", func() { PickWeighted(rng, 3, -1) })
	mustPanic(t, "all zero", func() { PickWeighted(rng, 0, 0, 0) })
	mustPanic(t, "no weights", func() { PickWeighted(rng) })
}
