// Package treefile reads and writes the classification tree working
// document. The engine type stays free of serialization tags; this
// codec owns the full-fidelity on-disk format.
package treefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"classtree.dev/classtree/internal/config"
	"classtree.dev/classtree/internal/tree"
)

// ErrBadDocument indicates that a tree document could not be decoded.
var ErrBadDocument = errors.New("bad tree document")

// DocumentError represents a tree document that failed to decode.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("bad tree document %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrBadDocument
func (e *DocumentError) Is(target error) bool {
	return target == ErrBadDocument
}

// NewDocumentError creates a new DocumentError
func NewDocumentError(path string, err error) *DocumentError {
	return &DocumentError{Path: path, Err: err}
}

// wireNode is the on-disk form of a node. Unlike the engine's encoded
// projection it keeps id, qty and share, so a document survives a
// round-trip without loss.
type wireNode struct {
	ID       int         `json:"id"`
	Label    string      `json:"label"`
	Qty      int         `json:"qty"`
	Share    int         `json:"share"`
	Children []*wireNode `json:"children"`
}

func toWire(n *tree.Node) *wireNode {
	w := &wireNode{
		ID:       n.ID,
		Label:    n.Label,
		Qty:      n.Qty,
		Share:    n.Share,
		Children: make([]*wireNode, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		w.Children = append(w.Children, toWire(c))
	}
	return w
}

func fromWire(w *wireNode) *tree.Node {
	n := &tree.Node{
		ID:    w.ID,
		Label: w.Label,
		Qty:   w.Qty,
		Share: w.Share,
	}
	if len(w.Children) > 0 {
		n.Children = make([]*tree.Node, 0, len(w.Children))
		for _, c := range w.Children {
			n.Children = append(n.Children, fromWire(c))
		}
	}
	return n
}

// New seeds a fresh document: a single root carrying the whole volume.
// The root id 0 leaves 1 free for the first created category.
func New(s *config.Settings) *tree.Node {
	return &tree.Node{
		ID:    0,
		Label: "Intake",
		Qty:   s.GlobalQty,
		Share: 100,
	}
}

// Load reads the document at path. A missing file surfaces as
// fs.ErrNotExist; anything unparseable surfaces as a DocumentError.
func Load(path string) (*tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree document: %w", err)
	}

	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, NewDocumentError(path, err)
	}

	return fromWire(&w), nil
}

// Save writes the document to path, creating parent directories as
// needed.
func Save(path string, root *tree.Node) error {
	if root == nil {
		return fmt.Errorf("cannot save an empty tree to %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	data, err := json.MarshalIndent(toWire(root), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tree document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tree document: %w", err)
	}

	return nil
}
