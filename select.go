package gp

import "math/rand"

// Selector picks one parent program from a scored population. Tournament
// selection is the only built-in; callers may plug in any other policy.
type Selector[P Node, F Fitness] func(pop *Population[P, F], rng *rand.Rand) P

// TournamentSelection draws tournamentSize contenders uniformly WITH
// replacement (the same individual may be drawn more than once) and
// returns the one with the best score card; ties go to an arbitrary
// contender. Any size of one or more is valid for a non-empty
// population. Larger tournaments raise selection pressure and lower
// diversity.
//
// Panics on an empty or unscored population, or a size below one.
func TournamentSelection[P Node, F Fitness](tournamentSize int, pop *Population[P, F], rng *rand.Rand) P {
	pop.mustScores()
	if tournamentSize < 1 {
		panic("gp: tournament size must be at least one")
	}

	winner := rng.Intn(pop.Len())
	for i := 1; i < tournamentSize; i++ {
		contender := rng.Intn(pop.Len())
		if pop.Scores[contender].ScoreCard().Cmp(pop.Scores[winner].ScoreCard()) > 0 {
			winner = contender
		}
	}
	return pop.Programs[winner]
}
