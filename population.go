package gp

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
)

// Population holds the programs of one generation together with their
// index-aligned fitness results: Scores[i] always belongs to
// Programs[i]. The two slices are equal in length at all times after
// scoring.
type Population[P Node, F Fitness] struct {
	Programs   []P
	Scores     []F
	Generation int
}

// NewPopulation allocates an empty population with room for n programs.
func NewPopulation[P Node, F Fitness](n, generation int) *Population[P, F] {
	return &Population[P, F]{
		Programs:   make([]P, 0, n),
		Scores:     make([]F, 0, n),
		Generation: generation,
	}
}

// Add appends a single program.
func (pop *Population[P, F]) Add(program P) {
	pop.Programs = append(pop.Programs, program)
}

// Len returns the number of programs.
func (pop *Population[P, F]) Len() int { return len(pop.Programs) }

// Score evaluates scoringFn for every program and replaces the score
// list, index-aligned with the programs. Evaluations fan out over
// runtime.NumCPU workers with no ordering guarantee between them; each
// gets its own rand.Rand seeded sequentially from rng, so a run is
// reproducible for a fixed master seed regardless of scheduling.
//
// A panic inside scoringFn propagates to the caller unmodified.
func (pop *Population[P, F]) Score(scoringFn func(P, *rand.Rand) F, rng *rand.Rand) {
	n := pop.Len()
	scores := make([]F, n)
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				scores[i] = scoringFn(pop.Programs[i], rand.New(rand.NewSource(seeds[i])))
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	pop.Scores = scores
}

// BestScore returns the highest fitness total, ranking NaN below every
// real number. Panics on an empty or unscored population.
func (pop *Population[P, F]) BestScore() Number {
	pop.mustScores()
	best := pop.Scores[0].ScoreCard()
	for _, f := range pop.Scores[1:] {
		if f.ScoreCard().Cmp(best) > 0 {
			best = f.ScoreCard()
		}
	}
	return best.Total()
}

// AvgScore returns the arithmetic mean of the fitness totals. NaN totals
// are excluded from the average; when every total is NaN the result is
// NaN. Panics on an empty or unscored population.
func (pop *Population[P, F]) AvgScore() Number {
	pop.mustScores()
	var sum float64
	count := 0
	for _, f := range pop.Scores {
		t := float64(f.ScoreCard().Total())
		if math.IsNaN(t) {
			continue
		}
		sum += t
		count++
	}
	if count == 0 {
		return Number(math.NaN())
	}
	return Number(sum / float64(count))
}

// Champion returns the top-ranked program.
func (pop *Population[P, F]) Champion() P {
	return pop.BestN(1)[0]
}

// BestN returns the k top-ranked programs, best first. Ties keep the
// lower population index first. Panics when k is out of range or the
// population is empty or unscored.
func (pop *Population[P, F]) BestN(k int) []P {
	pop.mustScores()
	if k < 1 || k > pop.Len() {
		panic("gp: BestN count out of range")
	}

	idx := make([]int, pop.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return pop.Scores[idx[a]].ScoreCard().Cmp(pop.Scores[idx[b]].ScoreCard()) > 0
	})

	best := make([]P, k)
	for i := 0; i < k; i++ {
		best[i] = pop.Programs[idx[i]]
	}
	return best
}

func (pop *Population[P, F]) mustScores() {
	if pop.Len() == 0 {
		panic("gp: empty population")
	}
	if len(pop.Scores) != len(pop.Programs) {
		panic("gp: population has not been scored")
	}
}

// RandomPopulation generates n random programs with target heights
// ramped from 1 up to maxDepth, so the initial generation covers a
// spread of tree sizes. gen builds one program from the given weights,
// recursing with NextLevel as it goes.
func RandomPopulation[P Node, F Fitness](n, maxDepth int, rng *rand.Rand, gen func(NodeWeights, *rand.Rand) P) *Population[P, F] {
	pop := NewPopulation[P, F](n, 0)
	for i := 0; i < n; i++ {
		pop.Add(gen(FixedHeight(rampedHeight(i, n, maxDepth)), rng))
	}
	return pop
}

// RetainBest keeps the best frac of the population and fills the rest
// with fresh ramped random programs, restarting the generation counter.
func RetainBest[P Node, F Fitness](frac Number, pop *Population[P, F], maxDepth int, rng *rand.Rand, gen func(NodeWeights, *rand.Rand) P) *Population[P, F] {
	keep := int(Number(pop.Len()) * frac)
	filler := pop.Len() - keep

	ret := NewPopulation[P, F](pop.Len(), 0)
	if keep > 0 {
		for _, p := range pop.BestN(keep) {
			ret.Add(p)
		}
	}
	for i := 0; i < filler; i++ {
		ret.Add(gen(FixedHeight(rampedHeight(i, filler, maxDepth)), rng))
	}
	return ret
}

func rampedHeight(i, n, maxDepth int) int {
	per := 1
	if maxDepth > 0 {
		per = n / maxDepth
	}
	if per < 1 {
		per = 1
	}
	return 1 + i/per
}
