package tree

import "fmt"

// Node is a single category in a classification tree. A node receives Share
// percent of its parent's quantity; the root's Qty is the total volume fed
// into the tree. Children keep insertion order through every operation.
//
// Fields are read directly; all structural changes go through the package's
// operations, which return a new root instead of mutating in place.
type Node struct {
	ID       int
	Label    string
	Qty      int
	Share    int
	Children []*Node
}

// NewLeaf creates a detached leaf to be attached under parent with
// AppendChild. The id is one greater than the highest id found anywhere in
// parent's children subtrees, or 1 when parent has no children; passing the
// tree root as parent therefore keeps ids unique across the whole tree. The
// share is a provisional equal split and is corrected when the leaf is
// appended.
func NewLeaf(parent *Node) *Node {
	id := 1
	share := 100
	if parent != nil {
		if len(parent.Children) > 0 {
			id = maxID(parent.Children) + 1
		}
		share = 100 / (len(parent.Children) + 1)
	}
	return &Node{
		ID:    id,
		Label: fmt.Sprintf("Category %d", id),
		Share: share,
	}
}

// maxID returns the highest id in the given subtrees.
func maxID(nodes []*Node) int {
	m := 0
	for _, n := range nodes {
		if n.ID > m {
			m = n.ID
		}
		if c := maxID(n.Children); c > m {
			m = c
		}
	}
	return m
}

// clone copies the node and its children slice. The children themselves are
// shared; callers replace individual entries on the copied slice.
func (n *Node) clone() *Node {
	cp := *n
	cp.Children = make([]*Node, len(n.Children))
	copy(cp.Children, n.Children)
	return &cp
}
