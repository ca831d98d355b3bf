package gp

import (
	"math"
	"testing"
)

func nan() Number { return Number(math.NaN()) }

func TestScoreCardTotal(t *testing.T) {
	card := NewScoreCard([]Score{{"a", 1}, {"b", 2}, {"c", -0.5}})
	if got := card.Total(); got != 2.5 {
		t.Fatalf("total = %v, want 2.5", got)
	}
	if len(card.Scores()) != 3 {
		t.Fatalf("card lost components")
	}
}

func TestScoreCardAddMergesByName(t *testing.T) {
	a := NewScoreCard([]Score{{"landed", 100}, {"fuel_left", 20}})
	b := NewScoreCard([]Score{{"landed", 100}, {"fuel_left", 30}})

	sum := a.Add(b)
	want := []Score{{"landed", 200}, {"fuel_left", 50}}
	got := sum.Scores()
	if len(got) != len(want) {
		t.Fatalf("got %d components, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if sum.Total() != 250 {
		t.Fatalf("total = %v, want 250", sum.Total())
	}
}

func TestScoreCardAddAppendsUnmatched(t *testing.T) {
	a := NewScoreCard([]Score{{"a", 1}})
	b := NewScoreCard([]Score{{"b", 2}, {"a", 10}})

	sum := a.Add(b)
	got := sum.Scores()
	if len(got) != 2 {
		t.Fatalf("got %d components, want 2", len(got))
	}
	if got[0] != (Score{"a", 11}) || got[1] != (Score{"b", 2}) {
		t.Fatalf("merge order wrong: %+v", got)
	}

	// inputs stay intact
	if a.Scores()[0].Value != 1 || b.Scores()[1].Value != 10 {
		t.Fatalf("Add modified its inputs")
	}
}

func TestScoreCardDivScalar(t *testing.T) {
	card := NewScoreCard([]Score{{"a", 2}, {"b", 4}})
	half := card.DivScalar(2)

	if half.Total() != 3 {
		t.Fatalf("total = %v, want 3", half.Total())
	}
	if half.Scores()[0].Value != 1 || half.Scores()[1].Value != 2 {
		t.Fatalf("components not divided: %+v", half.Scores())
	}
	if card.Total() != 6 {
		t.Fatalf("DivScalar modified its input")
	}
}

func TestScoreCardCmp(t *testing.T) {
	real3 := NewScoreCard([]Score{{"a", 3}})
	real2 := NewScoreCard([]Score{{"a", 2}})
	bad := NewScoreCard([]Score{{"a", nan()}})
	bad2 := NewScoreCard([]Score{{"b", nan()}})

	cases := []struct {
		name string
		a, b *ScoreCard
		want int
	}{
		{"greater", real3, real2, 1},
		{"less", real2, real3, -1},
		{"equal", real2, real2, 0},
		{"nan below real", bad, real2, -1},
		{"real above nan", real2, bad, 1},
		{"nan equals nan", bad, bad2, 0},
	}
	for _, c := range cases {
		if got := c.a.Cmp(c.b); got != c.want {
			t.Errorf("%s: Cmp = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestScoreCardString(t *testing.T) {
	card := NewScoreCard([]Score{{"food_eaten", 17}})
	if got := card.String(); got != "17.0000 (food_eaten=17.0000)" {
		t.Fatalf("String = %q", got)
	}
}

func TestSimpleFitness(t *testing.T) {
	f := NewSimpleFitness(Score{"a", 1}, Score{"b", 2})
	if f.ScoreCard().Total() != 3 {
		t.Fatalf("total = %v", f.ScoreCard().Total())
	}
}
