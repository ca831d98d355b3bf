package gp

import (
	"math/rand"
	"testing"
)

func TestMutateTreeStaysNearTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	base := node2(0,
		node1(1, leaf(2)),
		node2(3, leaf(4), node1(5, leaf(6))))

	const target = 8
	const limit = 12 // 1.5x the target

	for i := 0; i < 1000; i++ {
		mutated := MutateTree(base, target, rng)
		if d := Depth(mutated); d >= limit {
			t.Fatalf("trial %d: depth %d reached the 1.5x bound", i, d)
		}
	}
}

func TestMutateTreeLeavesSourceIntact(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	base := node2(0, leaf(1), node1(2, leaf(3)))
	want := node2(0, leaf(1), node1(2, leaf(3)))

	for i := 0; i < 100; i++ {
		MutateTree(base, 4, rng)
	}
	if !sameTree(base, want) {
		t.Fatalf("mutation modified the source tree")
	}
}

func TestMutateTreeSingleNode(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	base := leaf(7)

	mutated := MutateTree(base, 3, rng)
	if mutated == nil {
		t.Fatalf("mutation returned nil")
	}
	if d := Depth(mutated); d < 1 {
		t.Fatalf("mutated tree has depth %d", d)
	}
}
