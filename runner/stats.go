package runner

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	gp "github.com/darwins-challenge/moonlander-gp"
)

// GenStats accumulates per-generation fitness aggregates over a run.
// NaN totals (unscoreable generations) are dropped at record time so
// the summary stays finite.
type GenStats struct {
	bests []float64
	avgs  []float64
}

func (s *GenStats) Record(best, avg gp.Number) {
	if b := float64(best); !math.IsNaN(b) {
		s.bests = append(s.bests, b)
	}
	if a := float64(avg); !math.IsNaN(a) {
		s.avgs = append(s.avgs, a)
	}
}

func (s *GenStats) Generations() int { return len(s.bests) }

// Summary describes the distribution of per-generation aggregates.
type Summary struct {
	BestMean float64
	BestStd  float64
	BestMin  float64
	BestMax  float64
	AvgMean  float64
	AvgStd   float64
}

func (s *GenStats) Describe() Summary {
	var out Summary
	if len(s.bests) > 0 {
		out.BestMean = stat.Mean(s.bests, nil)
		out.BestMin = floats.Min(s.bests)
		out.BestMax = floats.Max(s.bests)
		if len(s.bests) > 1 {
			out.BestStd = stat.StdDev(s.bests, nil)
		}
	}
	if len(s.avgs) > 0 {
		out.AvgMean = stat.Mean(s.avgs, nil)
		if len(s.avgs) > 1 {
			out.AvgStd = stat.StdDev(s.avgs, nil)
		}
	}
	return out
}

// MeanDepth returns the average tree depth across programs.
func MeanDepth[P gp.Node](programs []P) float64 {
	if len(programs) == 0 {
		return 0
	}
	total := 0
	for _, p := range programs {
		total += gp.Depth(p)
	}
	return float64(total) / float64(len(programs))
}
