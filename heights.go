package gp

import "math/rand"

// Minimum kind weight. A leaf may be needed at a point in the tree where
// the bias has driven its weight to zero (or the other way around), and
// there must always be a legal choice.
const minWeight = 1

// NodeWeights carries the depth-dependent kind weights used while
// growing a random tree toward a target height. At level 0 internal
// constructors are strongly favored; by level target-1 leaves are. Both
// weights are floored at one.
//
// Node generators ask for Internal and Leaf, feed them to PickWeighted,
// and recurse into children with NextLevel.
type NodeWeights struct {
	level    int
	perLevel int
}

// FixedHeight returns level-zero weights aiming for the given target
// height.
func FixedHeight(targetHeight int) NodeWeights {
	span := targetHeight - 1
	if span < 1 {
		span = 1
	}
	return NodeWeights{level: 0, perLevel: 100 / span}
}

// RandomizedHeight returns weights for a target height drawn uniformly
// from [1, maxHeight-1]. A maxHeight below 2 collapses to
// FixedHeight(1).
func RandomizedHeight(maxHeight int, rng *rand.Rand) NodeWeights {
	return FixedHeight(randomTarget(maxHeight, rng))
}

// randomTarget is the single place the randomized target height is
// drawn; the evolution loop shares it so the two cannot drift.
func randomTarget(maxHeight int, rng *rand.Rand) int {
	if maxHeight < 2 {
		return 1
	}
	return 1 + rng.Intn(maxHeight-1)
}

// Internal returns the weight of choosing an internal-node constructor
// at the current level.
func (w NodeWeights) Internal() int {
	v := 100 - w.perLevel*w.level
	if v < minWeight {
		return minWeight
	}
	return v
}

// Leaf returns the weight of choosing a leaf constructor at the current
// level.
func (w NodeWeights) Leaf() int {
	v := w.perLevel * w.level
	if v < minWeight {
		return minWeight
	}
	return v
}

// NextLevel returns the weights one level deeper.
func (w NodeWeights) NextLevel() NodeWeights {
	return NodeWeights{level: w.level + 1, perLevel: w.perLevel}
}
