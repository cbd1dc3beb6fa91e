package tree

// Encoded is the external projection of a node: label and children
// only. Ids, quantities and shares are working state and stay inside
// the engine.
type Encoded struct {
	Label    string     `json:"label"`
	Children []*Encoded `json:"children"`
}

// Encode projects the subtree into its external form. Children is
// always non-nil so the encoded value marshals to an array, never null.
func (n *Node) Encode() *Encoded {
	if n == nil {
		return nil
	}
	enc := &Encoded{
		Label:    n.Label,
		Children: make([]*Encoded, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		enc.Children = append(enc.Children, c.Encode())
	}
	return enc
}
