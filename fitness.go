package gp

import (
	"fmt"
	"math"
	"strings"
)

// Fitness models the evaluation outcome of one program. Implementations
// may retain arbitrary diagnostic state from the evaluation; the engine
// only ever looks at the ScoreCard.
type Fitness interface {
	ScoreCard() *ScoreCard
}

// Score is one named component of a ScoreCard.
type Score struct {
	Name  string
	Value Number
}

// ScoreCard is an immutable tagged list of score components, with the
// total retained as a separate field. Component names are unique within
// a card.
type ScoreCard struct {
	scores []Score
	total  Number
}

// NewScoreCard builds a card from the given components; the total is
// their sum. The slice is retained, callers must not modify it.
func NewScoreCard(scores []Score) *ScoreCard {
	total := Number(0)
	for _, s := range scores {
		total += s.Value
	}
	return &ScoreCard{scores: scores, total: total}
}

// Scores returns the components. Callers must not modify the slice.
func (sc *ScoreCard) Scores() []Score { return sc.scores }

// Total returns the cached sum of all components.
func (sc *ScoreCard) Total() Number { return sc.total }

// Add merges two cards component-wise by name: matching names sum,
// unmatched names are appended in encounter order. Neither input is
// modified.
func (sc *ScoreCard) Add(other *ScoreCard) *ScoreCard {
	merged := make([]Score, len(sc.scores), len(sc.scores)+len(other.scores))
	copy(merged, sc.scores)

	pos := make(map[string]int, len(merged))
	for i, s := range merged {
		pos[s.Name] = i
	}
	for _, s := range other.scores {
		if i, ok := pos[s.Name]; ok {
			merged[i].Value += s.Value
		} else {
			pos[s.Name] = len(merged)
			merged = append(merged, s)
		}
	}
	return NewScoreCard(merged)
}

// DivScalar divides every component and the total by k. Together with
// Add this averages the cards of repeated noisy evaluations.
func (sc *ScoreCard) DivScalar(k Number) *ScoreCard {
	scaled := make([]Score, len(sc.scores))
	for i, s := range sc.scores {
		scaled[i] = Score{Name: s.Name, Value: s.Value / k}
	}
	return &ScoreCard{scores: scaled, total: sc.total / k}
}

// Cmp orders cards by total. The order is total even against NaN: two
// NaN totals compare equal and a NaN total ranks strictly below every
// real number. Returns -1, 0 or 1.
func (sc *ScoreCard) Cmp(other *ScoreCard) int {
	a, b := float64(sc.total), float64(other.total)
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return -1
	case math.IsNaN(b):
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (sc *ScoreCard) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.4f (", sc.total)
	for i, s := range sc.scores {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%.4f", s.Name, s.Value)
	}
	b.WriteString(")")
	return b.String()
}

// SimpleFitness is a Fitness that consists of just a ScoreCard, for
// scoring functions with no additional state to retain.
type SimpleFitness struct {
	card *ScoreCard
}

// NewSimpleFitness builds a SimpleFitness from the given components.
func NewSimpleFitness(scores ...Score) SimpleFitness {
	return SimpleFitness{card: NewScoreCard(scores)}
}

// ScoreCard implements Fitness.
func (f SimpleFitness) ScoreCard() *ScoreCard { return f.card }
