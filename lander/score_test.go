package lander

import (
	"math/rand"
	"testing"

	gp "github.com/darwins-challenge/moonlander-gp"
)

func TestScoreDescentSafe(t *testing.T) {
	l := &Lander{Altitude: 0, Velocity: -2, Fuel: 10}
	card := scoreDescent(l)
	if got := card.Total(); got != 110 {
		t.Fatalf("total %v, want 110", got)
	}
	for _, s := range card.Scores() {
		switch s.Name {
		case "landed":
			if s.Value != 100 {
				t.Errorf("landed = %v, want 100", s.Value)
			}
		case "fuel_left":
			if s.Value != 10 {
				t.Errorf("fuel_left = %v, want 10", s.Value)
			}
		case "impact":
			if s.Value != 0 {
				t.Errorf("impact = %v, want 0", s.Value)
			}
		}
	}
}

func TestScoreDescentCrash(t *testing.T) {
	l := &Lander{Altitude: 0, Velocity: -4, Fuel: 5}
	card := scoreDescent(l)
	// No landing bonus, fuel 5, impact -(4-2)^2 = -4.
	if got := card.Total(); got != 1 {
		t.Fatalf("total %v, want 1", got)
	}
}

func TestScoreDescentStillFlying(t *testing.T) {
	l := &Lander{Altitude: 50, Velocity: 3, Fuel: 0}
	card := scoreDescent(l)
	if got := card.Total(); got != 0 {
		t.Fatalf("total %v, want 0: no bonus and no impact in the air", got)
	}
}

func TestScoreDeterministic(t *testing.T) {
	prog := If(Less(Sensor(Velocity), Constant(-2)), Do(Thrust), Do(Skip))
	a := Score(prog, rand.New(rand.NewSource(99)))
	b := Score(prog, rand.New(rand.NewSource(99)))
	if a.ScoreCard().Total() != b.ScoreCard().Total() {
		t.Fatalf("same seed scored %v then %v", a.ScoreCard().Total(), b.ScoreCard().Total())
	}
}

func TestScoreAveragesTrials(t *testing.T) {
	f := Score(Do(Skip), rand.New(rand.NewSource(1)))
	card := f.ScoreCard()
	if len(card.Scores()) != 3 {
		t.Fatalf("card has %d components, want 3", len(card.Scores()))
	}
	// Every descent free-falls from 80..120 and hits hard: the fuel
	// credit never outweighs the impact penalty.
	if card.Total() >= 0 {
		t.Fatalf("skip program scored %v, want negative", card.Total())
	}
}

func TestScoreBrakeProgramSolves(t *testing.T) {
	// Thrust whenever the craft falls faster than 1: touchdown speed
	// never exceeds 2, and fuel outlasts the descent from any start.
	brake := If(Less(Sensor(Velocity), Constant(-1)), Do(Thrust), Do(Skip))
	f := Score(brake, rand.New(rand.NewSource(7)))
	if !Solved(f) {
		t.Fatalf("brake program not solved: %v", f.ScoreCard())
	}
	for _, s := range f.ScoreCard().Scores() {
		if s.Name == "fuel_left" && s.Value <= 0 {
			t.Fatalf("fuel_left = %v, want positive", s.Value)
		}
	}
}

func TestSolved(t *testing.T) {
	safe := gp.NewSimpleFitness(
		gp.Score{Name: "landed", Value: 100},
		gp.Score{Name: "fuel_left", Value: 20},
		gp.Score{Name: "impact", Value: 0},
	)
	if !Solved(safe) {
		t.Error("all-trials landing not reported solved")
	}
	partial := gp.NewSimpleFitness(
		gp.Score{Name: "landed", Value: 80},
		gp.Score{Name: "fuel_left", Value: 20},
		gp.Score{Name: "impact", Value: -1},
	)
	if Solved(partial) {
		t.Error("partial landing reported solved")
	}
}

func TestRandomStartRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		l := RandomStart(rng)
		if l.Altitude < 80 || l.Altitude >= 120 {
			t.Fatalf("altitude %v out of [80,120)", l.Altitude)
		}
		if l.Fuel < 60 || l.Fuel >= 80 {
			t.Fatalf("fuel %v out of [60,80)", l.Fuel)
		}
		if l.Velocity != 0 {
			t.Fatalf("velocity %v, want 0", l.Velocity)
		}
	}
}
