package gp

import "math/rand"

// Weights are the unnormalized integer shares used to choose between the
// three evolution operators on every draw.
type Weights struct {
	Reproduce int
	Mutate    int
	Crossover int
}

// Evolve produces the next generation from pop. It repeatedly draws one
// weighted operator and inserts its output until the new population
// reaches the size of the old one, at generation+1:
//
//   - reproduce: one selected parent, copied unchanged.
//   - mutate: one selected parent, put through MutateTree with a
//     randomized target height of at most maxHeight.
//   - crossover: two selected parents; both offspring are inserted.
//     Because the size is checked before each draw rather than after,
//     the result may overshoot the target size by at most one.
//
// Crossover draws are skipped while the source population has fewer than
// two members. A configuration where no other operator could ever fire
// would spin forever, so it panics up front.
func Evolve[P Node, F Fitness](pop *Population[P, F], weights Weights, maxHeight int, rng *rand.Rand, selector Selector[P, F]) *Population[P, F] {
	if pop.Len() < 2 && weights.Crossover > 0 && weights.Reproduce <= 0 && weights.Mutate <= 0 {
		panic("gp: crossover needs at least two programs")
	}

	ret := NewPopulation[P, F](pop.Len()+1, pop.Generation+1)
	for ret.Len() < pop.Len() {
		switch PickWeighted(rng, weights.Reproduce, weights.Mutate, weights.Crossover) {
		case 0:
			winner := selector(pop, rng)
			ret.Add(winner.Copy().(P))

		case 1:
			winner := selector(pop, rng)
			ret.Add(MutateTree(winner, randomTarget(maxHeight, rng), rng))

		case 2:
			if pop.Len() < 2 {
				continue
			}
			one := selector(pop, rng)
			two := selector(pop, rng)
			child1, child2 := CrossoverTree(one, two, rng)
			ret.Add(child1)
			ret.Add(child2)
		}
	}
	return ret
}
