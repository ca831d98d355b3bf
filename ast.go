// Package gp is a generic engine for tree-based genetic programming. It
// evolves populations of program trees through mutation, crossover and
// selection, ranked by a caller-supplied fitness function. The engine
// knows nothing about the problem domain: embedding applications define
// their own node kinds against the Node contract and provide a scoring
// callback.
package gp

import "math/rand"

// NodeType identifies the grammar kind of a node. Every node built from
// the same kind shares one tag, and tags must be injective over the
// concrete shapes of a grammar: crossover uses them to find compatible
// swap points between two trees.
type NodeType int

// Node is the contract every program-tree node kind satisfies.
//
// Trees are immutable values: implementations never modify a node in
// place, and every edit returns a new node sharing the untouched
// children. That makes it safe for offspring to share unmodified
// subtrees with their parents.
type Node interface {
	// Type returns the stable kind tag of this node.
	Type() NodeType

	// Children returns the ordered child nodes, empty for leaves.
	// Callers must not modify the returned slice.
	Children() []Node

	// ReplaceChild returns a copy of this node with child i replaced
	// and all other children shared unchanged. An index out of range,
	// or a node the slot cannot hold, is a contract violation and
	// panics.
	ReplaceChild(i int, child Node) Node

	// Mutate returns a replacement for this node of the same kind,
	// biased toward the height budget carried by w. Regenerating a
	// fresh subtree and perturbing leaf data are both legal policies.
	Mutate(w NodeWeights, rng *rand.Rand) Node

	// Copy returns an independent duplicate, for call sites where the
	// concrete kind is not known.
	Copy() Node
}

// Depth returns the depth of a tree: 1 for a leaf, 1 plus the deepest
// child otherwise.
func Depth(node Node) int {
	deepest := 0
	for _, c := range node.Children() {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// NodeCount returns the total number of nodes in a tree.
func NodeCount(node Node) int {
	n := 1
	for _, c := range node.Children() {
		n += NodeCount(c)
	}
	return n
}
