package tree

// DistributeQty sets the receiver's qty and propagates it down the
// subtree: every child receives qty*share/100 of its parent's qty,
// truncated. Call it on the root with the total volume to refresh the
// whole tree consistently.
func (n *Node) DistributeQty(qty int) *Node {
	if n == nil {
		return n
	}
	cp := *n
	cp.Qty = qty
	if len(n.Children) > 0 {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.DistributeQty(qty * c.Share / 100)
		}
	}
	return &cp
}

// DistributeShare sets the share of the node with id and rebalances its
// siblings: each sibling receives (100-share)/siblingCount, lifted to 1
// when truncation would zero it out. Siblings are updated before the
// target so the explicit share always wins. Identity on miss.
func (n *Node) DistributeShare(id, share int) *Node {
	next := n
	if sibs := n.Siblings(id); len(sibs) > 0 {
		each := (100 - share) / len(sibs)
		if each == 0 {
			each = 1
		}
		for _, s := range sibs {
			next = next.UpdateShare(s.ID, each)
		}
	}
	return next.UpdateShare(id, share)
}
