package tree

// intakeTree builds the fixture shared across the package tests:
//
//	0 Intake (share 100)
//	├── 1 Web (25)
//	│   ├── 4 Organic (50)
//	│   └── 5 Paid (50)
//	├── 2 Phone (25)
//	└── 3 Partner (50)
//
// Quantities start at zero; tests that need them call DistributeQty.
func intakeTree() *Node {
	return &Node{
		ID:    0,
		Label: "Intake",
		Share: 100,
		Children: []*Node{
			{
				ID:    1,
				Label: "Web",
				Share: 25,
				Children: []*Node{
					{ID: 4, Label: "Organic", Share: 50},
					{ID: 5, Label: "Paid", Share: 50},
				},
			},
			{ID: 2, Label: "Phone", Share: 25},
			{ID: 3, Label: "Partner", Share: 50},
		},
	}
}

// walk applies fn to every node of the subtree in preorder.
func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		walk(c, fn)
	}
}

// collectIDs returns every id in the subtree in preorder.
func collectIDs(n *Node) []int {
	var ids []int
	walk(n, func(n *Node) {
		ids = append(ids, n.ID)
	})
	return ids
}
