package gp

// NodeInTree points at one node together with the path back to the root,
// so a modified copy of the whole tree can be rebuilt after replacing
// that single node.
//
// Identity is positional: a record is its parent record plus the child
// index assigned during traversal. Two structurally equal subtrees at
// different positions get distinct records.
type NodeInTree struct {
	Node Node

	// Parent is the record of the parent node, nil at the root.
	Parent *NodeInTree

	// ChildIdx is the index of Node within the parent's children,
	// -1 at the root.
	ChildIdx int
}

// Depth returns the distance from the root: 0 for the root record.
func (nit *NodeInTree) Depth() int {
	d := 0
	for p := nit.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// FindNodesAndParents returns every node in the tree paired with its
// path-to-root record, the root first and children in preorder.
func FindNodesAndParents(root Node) []*NodeInTree {
	// Skip some resizes we would have to do on medium-sized trees.
	records := make([]*NodeInTree, 0, 100)

	rootRecord := &NodeInTree{Node: root, ChildIdx: -1}
	records = append(records, rootRecord)
	return appendChildRecords(root, rootRecord, records)
}

func appendChildRecords(parent Node, parentRecord *NodeInTree, acc []*NodeInTree) []*NodeInTree {
	for i, child := range parent.Children() {
		record := &NodeInTree{Node: child, Parent: parentRecord, ChildIdx: i}
		acc = append(acc, record)
		acc = appendChildRecords(child, record, acc)
	}
	return acc
}

// ReplaceToRoot returns a copy of the entire tree with the node indicated
// by record replaced by replacement. Starting at the target, each
// ancestor on the path is asked to replace its matching child with the
// node rebuilt so far; everything off the path is shared by reference,
// so the cost is proportional to the depth of the target, not the size
// of the tree.
//
// The record must come from a traversal of the tree being rebuilt;
// anything else is a contract violation.
func ReplaceToRoot(record *NodeInTree, replacement Node) Node {
	node := replacement
	for cur := record; cur.Parent != nil; cur = cur.Parent {
		node = cur.Parent.Node.ReplaceChild(cur.ChildIdx, node)
	}
	return node
}
