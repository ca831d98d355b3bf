package gp

import "math/rand"

// MutateTree returns a copy of tree with one node, picked uniformly at
// random over the full traversal, replaced by that node's own mutation.
// The replacement is biased toward the height remaining between the
// picked node's depth and targetHeight, which keeps repeatedly mutated
// trees near the target. Picking the root regrows the whole tree;
// picking a leaf replaces just that leaf.
func MutateTree[P Node](tree P, targetHeight int, rng *rand.Rand) P {
	records := FindNodesAndParents(tree)
	picked := records[rng.Intn(len(records))]

	remaining := targetHeight - picked.Depth()
	mutated := picked.Node.Mutate(FixedHeight(remaining), rng)

	return ReplaceToRoot(picked, mutated).(P)
}
