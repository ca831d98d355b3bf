package gp

import (
	"math/rand"
	"sort"
)

// CrossoverTree returns two offspring built by swapping one pair of
// matching-kind subtrees between a and b. Nodes of both trees are
// grouped by kind tag, one shared tag is picked uniformly, then one node
// of that kind within each tree; both trees are rebuilt around the swap.
// The offspring may differ in size and shape from either parent, and the
// swapped subtrees are shared by reference, never copied.
//
// Both trees must come from the same grammar, so the shared tag set is
// non-empty (at minimum the root tags match). An empty intersection
// means the trees are incompatible and panics.
func CrossoverTree[P Node](a, b P, rng *rand.Rand) (P, P) {
	groupsA := groupByType(FindNodesAndParents(a))
	groupsB := groupByType(FindNodesAndParents(b))

	shared := make([]NodeType, 0, len(groupsA))
	for typ := range groupsA {
		if _, ok := groupsB[typ]; ok {
			shared = append(shared, typ)
		}
	}
	if len(shared) == 0 {
		panic("gp: crossover between trees that share no node kind")
	}
	// Map iteration order is random; keep the draw reproducible for a
	// seeded rng.
	sort.Slice(shared, func(i, j int) bool { return shared[i] < shared[j] })

	typ := shared[rng.Intn(len(shared))]
	candidatesA := groupsA[typ]
	candidatesB := groupsB[typ]
	recA := candidatesA[rng.Intn(len(candidatesA))]
	recB := candidatesB[rng.Intn(len(candidatesB))]

	child1 := ReplaceToRoot(recA, recB.Node).(P)
	child2 := ReplaceToRoot(recB, recA.Node).(P)
	return child1, child2
}

func groupByType(records []*NodeInTree) map[NodeType][]*NodeInTree {
	groups := make(map[NodeType][]*NodeInTree)
	for _, r := range records {
		groups[r.Node.Type()] = append(groups[r.Node.Type()], r)
	}
	return groups
}
