package tree

// AppendChild inserts child at the front of the children of the node with
// parentID and re-spreads every share in the enlarged set to an equal
// 100/count split (integer division; the sum may drift slightly under 100).
// The child is copied on insertion, so the caller's detached value stays
// independent of the returned tree. If parentID is absent the input root is
// returned unchanged.
func (n *Node) AppendChild(parentID int, child *Node) *Node {
	if n == nil || child == nil {
		return n
	}
	if n.ID == parentID {
		kids := make([]*Node, 0, len(n.Children)+1)
		kids = append(kids, child)
		kids = append(kids, n.Children...)
		cp := *n
		cp.Children = respread(kids)
		return &cp
	}
	for i, c := range n.Children {
		if next := c.AppendChild(parentID, child); next != c {
			cp := n.clone()
			cp.Children[i] = next
			return cp
		}
	}
	return n
}

// Delete removes the node with id from its parent's children and re-spreads
// the remaining siblings' shares equally. The root cannot be deleted: when
// id has no parent (the receiver's own id, or absent) the input root is
// returned unchanged.
func (n *Node) Delete(id int) *Node {
	if n == nil {
		return n
	}
	for i, c := range n.Children {
		if c.ID == id {
			kids := make([]*Node, 0, len(n.Children)-1)
			kids = append(kids, n.Children[:i]...)
			kids = append(kids, n.Children[i+1:]...)
			cp := *n
			cp.Children = respread(kids)
			return &cp
		}
	}
	for i, c := range n.Children {
		if next := c.Delete(id); next != c {
			cp := n.clone()
			cp.Children[i] = next
			return cp
		}
	}
	return n
}

// UpdateLabel replaces the label of the node with id. Identity on miss.
func (n *Node) UpdateLabel(id int, label string) *Node {
	if n == nil {
		return n
	}
	if n.ID == id {
		cp := n.clone()
		cp.Label = label
		return cp
	}
	for i, c := range n.Children {
		if next := c.UpdateLabel(id, label); next != c {
			cp := n.clone()
			cp.Children[i] = next
			return cp
		}
	}
	return n
}

// UpdateShare replaces the share of the node with id, without validation and
// without touching its siblings. It is the primitive DistributeShare builds
// on. Identity on miss.
func (n *Node) UpdateShare(id, share int) *Node {
	if n == nil {
		return n
	}
	if n.ID == id {
		cp := n.clone()
		cp.Share = share
		return cp
	}
	for i, c := range n.Children {
		if next := c.UpdateShare(id, share); next != c {
			cp := n.clone()
			cp.Children[i] = next
			return cp
		}
	}
	return n
}

// respread copies every node in kids with its share reset to the equal
// integer split 100/len(kids). Subtrees below the copied nodes are shared.
func respread(kids []*Node) []*Node {
	if len(kids) == 0 {
		return kids
	}
	share := 100 / len(kids)
	out := make([]*Node, len(kids))
	for i, k := range kids {
		cp := k.clone()
		cp.Share = share
		out[i] = cp
	}
	return out
}
