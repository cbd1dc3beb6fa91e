package tree

import (
	"errors"
	"fmt"
)

const (
	// normalizeStep is the amount added to the root qty on every
	// normalization pass.
	normalizeStep = 1000

	// normalizeMaxIterations bounds the fixpoint loop so a subtree that
	// can never be lifted (a zero share, for instance) cannot hang the
	// caller.
	normalizeMaxIterations = 10000
)

// ErrNoConvergence indicates that normalization hit its iteration cap
// before every node reached the minimum quantity.
var ErrNoConvergence = errors.New("normalization did not converge")

// ConvergenceError reports a normalization run that exhausted its
// iteration budget.
type ConvergenceError struct {
	MinQty     int
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no convergence on min qty %d after %d iterations", e.MinQty, e.Iterations)
}

// Is returns true if the target error is ErrNoConvergence
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrNoConvergence
}

// NewConvergenceError creates a new ConvergenceError
func NewConvergenceError(minQty, iterations int) *ConvergenceError {
	return &ConvergenceError{MinQty: minQty, Iterations: iterations}
}

// Underfed reports whether the node or any of its descendants carries a
// qty below minQty.
func (n *Node) Underfed(minQty int) bool {
	if n == nil {
		return false
	}
	if n.Qty < minQty {
		return true
	}
	for _, c := range n.Children {
		if c.Underfed(minQty) {
			return true
		}
	}
	return false
}

// Normalize grows the receiver's qty in fixed steps, redistributing
// after each step, until no node in the subtree is underfed. When the
// iteration cap is hit the input tree is returned unchanged along with
// a ConvergenceError.
func (n *Node) Normalize(minQty int) (*Node, error) {
	if !n.Underfed(minQty) {
		return n, nil
	}
	next := n
	for i := 0; i < normalizeMaxIterations; i++ {
		next = next.DistributeQty(next.Qty + normalizeStep)
		if !next.Underfed(minQty) {
			return next, nil
		}
	}
	return n, NewConvergenceError(minQty, normalizeMaxIterations)
}
