// Package tree implements the classification-tree engine.
//
// It is the core of classtree, responsible for:
//   - Locating nodes, parents, and siblings by id in a tree that carries
//     no upward links
//   - Structural mutation (append, delete, relabel) with equal re-spreading
//     of sibling shares
//   - Proportional distribution of an absolute quantity down the tree
//   - Normalization: growing the total volume until no node is underfed
//
// Trees are persistent values: every operation returns a new root built by
// copying the path from the root down to the affected node and sharing every
// untouched subtree. Operations never mutate their input, and an operation
// whose target id is absent returns the input root unchanged.
package tree
