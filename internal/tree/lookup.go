package tree

// Find returns the first node in preorder whose id matches, or nil if the id
// is absent from the subtree.
func (n *Node) Find(id int) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// FindAll maps Find over ids, keeping the input order and cardinality: one
// slot per id, nil where the id is absent.
func (n *Node) FindAll(ids []int) []*Node {
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = n.Find(id)
	}
	return out
}

// Parent returns the node whose immediate children contain id. It returns
// nil when id is the receiver's own id or absent: the root has no parent.
func (n *Node) Parent(id int) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.ID == id {
			return n
		}
	}
	for _, c := range n.Children {
		if p := c.Parent(id); p != nil {
			return p
		}
	}
	return nil
}

// Siblings returns the other children of id's parent, in their stored order.
// The result is a fresh slice; it is nil when id has no parent in the
// subtree (the root, or an absent id).
func (n *Node) Siblings(id int) []*Node {
	p := n.Parent(id)
	if p == nil {
		return nil
	}
	var out []*Node
	for _, c := range p.Children {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Depth returns how many generations below the receiver the id sits, with
// the receiver itself at 0. It returns -1 when the id is absent. This is the
// level value AllowExpand expects.
func (n *Node) Depth(id int) int {
	if n == nil {
		return -1
	}
	if n.ID == id {
		return 0
	}
	for _, c := range n.Children {
		if d := c.Depth(id); d >= 0 {
			return d + 1
		}
	}
	return -1
}
