package lander

import (
	"math/rand"

	gp "github.com/darwins-challenge/moonlander-gp"
)

// Trials is the number of randomized descents averaged per score.
const Trials = 5

// RandomStart jitters the initial state so programs cannot overfit a
// single descent.
func RandomStart(rng *rand.Rand) Lander {
	return Lander{
		Altitude: 80 + gp.Number(rng.Float64()*40),
		Velocity: 0,
		Fuel:     60 + gp.Number(rng.Float64()*20),
	}
}

// scoreDescent scores one finished descent. A safe touchdown is worth a
// flat bonus, leftover fuel counts for itself, and hitting the ground
// above the safe speed is penalized quadratically.
func scoreDescent(l *Lander) *gp.ScoreCard {
	landed := gp.Number(0)
	impact := gp.Number(0)
	if l.Landed() {
		if l.SafeLanding() {
			landed = 100
		}
		if excess := abs(l.Velocity) - SafeLandingSpeed; excess > 0 {
			impact = -gp.Square(excess)
		}
	}
	return gp.NewScoreCard([]gp.Score{
		{Name: "landed", Value: landed},
		{Name: "fuel_left", Value: l.Fuel},
		{Name: "impact", Value: impact},
	})
}

// Score flies Trials randomized descents and averages their cards.
func Score(p *Program, rng *rand.Rand) gp.SimpleFitness {
	return ScoreTrials(p, Trials, rng)
}

// ScoreTrials is Score with a caller-chosen trial count.
func ScoreTrials(p *Program, trials int, rng *rand.Rand) gp.SimpleFitness {
	if trials < 1 {
		trials = 1
	}
	var card *gp.ScoreCard
	for i := 0; i < trials; i++ {
		final := Simulate(p, RandomStart(rng))
		trial := scoreDescent(&final)
		if card == nil {
			card = trial
		} else {
			card = card.Add(trial)
		}
	}
	card = card.DivScalar(gp.Number(trials))
	return gp.NewSimpleFitness(card.Scores()...)
}

// Solved reports a program that landed safely on every trial.
func Solved(f gp.SimpleFitness) bool {
	for _, s := range f.ScoreCard().Scores() {
		if s.Name == "landed" {
			return s.Value >= 100
		}
	}
	return false
}
