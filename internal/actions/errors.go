package actions

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound indicates that an id matches no category in the tree
var ErrNodeNotFound = errors.New("category not found")

// NodeNotFoundError represents an error when an id matches no category
type NodeNotFoundError struct {
	ID int
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("no category with id %d", e.ID)
}

// Is returns true if the target error is ErrNodeNotFound
func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}

// NewNodeNotFoundError creates a new NodeNotFoundError
func NewNodeNotFoundError(id int) *NodeNotFoundError {
	return &NodeNotFoundError{ID: id}
}
