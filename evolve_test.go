package gp

import (
	"math/rand"
	"testing"
)

func constScore(_ *testNode, _ *rand.Rand) SimpleFitness {
	return NewSimpleFitness(Score{"k", 1})
}

func tourney3(pop *Population[*testNode, SimpleFitness], rng *rand.Rand) *testNode {
	return TournamentSelection(3, pop, rng)
}

func hasParent(pop *Population[*testNode, SimpleFitness], p *testNode) bool {
	for _, parent := range pop.Programs {
		if sameTree(parent, p) {
			return true
		}
	}
	return false
}

func TestEvolveSizeWithinOne(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pop := RandomPopulation[*testNode, SimpleFitness](40, 5, rng, randTestNode)
	weights := Weights{Reproduce: 10, Mutate: 20, Crossover: 70}

	for gen := 0; gen < 20; gen++ {
		pop.Score(constScore, rng)
		size := pop.Len()

		pop = Evolve(pop, weights, 7, rng, tourney3)
		if pop.Len() != size && pop.Len() != size+1 {
			t.Fatalf("generation %d: size went from %d to %d", gen, size, pop.Len())
		}
		if pop.Generation != gen+1 {
			t.Fatalf("generation counter = %d, want %d", pop.Generation, gen+1)
		}
	}
}

func TestEvolveReproduceOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	pop := RandomPopulation[*testNode, SimpleFitness](15, 4, rng, randTestNode)
	pop.Score(constScore, rng)

	next := Evolve(pop, Weights{Reproduce: 1}, 7, rng, tourney3)
	if next.Len() != pop.Len() {
		t.Fatalf("reproduce-only grew the population to %d", next.Len())
	}
	for i, p := range next.Programs {
		if !hasParent(pop, p) {
			t.Fatalf("program %d is not a copy of any parent", i)
		}
		for _, parent := range pop.Programs {
			if p == parent {
				t.Fatalf("program %d shares its parent's nodes instead of copying", i)
			}
		}
	}
}

func TestEvolveMutateOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	pop := RandomPopulation[*testNode, SimpleFitness](15, 4, rng, randTestNode)
	pop.Score(constScore, rng)

	next := Evolve(pop, Weights{Mutate: 1}, 6, rng, tourney3)
	if next.Len() != pop.Len() {
		t.Fatalf("mutate-only grew the population to %d", next.Len())
	}
	for i, p := range next.Programs {
		if p == nil || Depth(p) < 1 {
			t.Fatalf("program %d is malformed", i)
		}
	}
}

func TestEvolveSkipsCrossoverBelowPair(t *testing.T) {
	pop := scoredPopulation(1)
	rng := rand.New(rand.NewSource(3))

	next := Evolve(pop, Weights{Reproduce: 1, Crossover: 1}, 4, rng,
		func(pop *Population[*testNode, SimpleFitness], rng *rand.Rand) *testNode {
			return TournamentSelection(1, pop, rng)
		})
	if next.Len() != 1 {
		t.Fatalf("Len = %d, want 1", next.Len())
	}
	if !sameTree(next.Programs[0], pop.Programs[0]) {
		t.Fatalf("lone program should have been reproduced")
	}
}

func TestEvolvePanicsOnImpossibleWeights(t *testing.T) {
	pop := scoredPopulation(1)
	rng := rand.New(rand.NewSource(3))

	mustPanic(t, "crossover-only singleton", func() {
		Evolve(pop, Weights{Crossover: 1}, 4, rng, tourney3)
	})
}
