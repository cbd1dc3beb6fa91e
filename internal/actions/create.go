package actions

import (
	"fmt"

	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/tree"
	"classtree.dev/classtree/internal/utils"
)

// CreateOptions contains options for the create command
type CreateOptions struct {
	ParentID int
	Label    string
}

// CreateAction creates a new category under the given parent. Sibling
// shares are re-spread evenly among the parent's children.
func CreateAction(ctx *runtime.Context, opts CreateOptions) error {
	console := ctx.Console

	parent := ctx.Tree.Find(opts.ParentID)
	if parent == nil {
		return NewNodeNotFoundError(opts.ParentID)
	}

	level := ctx.Tree.Depth(opts.ParentID)
	if !tree.AllowExpand(ctx.Settings.Limits(), level, parent.Children) {
		return fmt.Errorf("category %s cannot take another child (limits: %d children, %d levels)",
			parent.Label, ctx.Settings.MaxChildren, ctx.Settings.MaxLevels)
	}

	label := utils.CleanLabel(opts.Label)

	// Accept a piped label before falling back to the generated one
	if label == "" && !utils.IsInteractive() {
		piped, err := utils.ReadFromStdin()
		if err == nil {
			label = utils.CleanLabel(piped)
		}
	}

	// Allocate the id from the root so it is unique across the whole
	// tree, not just under this parent.
	child := tree.NewLeaf(ctx.Tree)
	if label == "" && utils.IsInteractive() {
		entered, err := promptLabel("Name for the new category:", child.Label)
		if err != nil {
			return err
		}
		label = utils.CleanLabel(entered)
	}
	if label != "" {
		child.Label = label
	}

	next := ctx.Tree.AppendChild(opts.ParentID, child)
	if !ctx.Swap(next) {
		return NewNodeNotFoundError(opts.ParentID)
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to save tree: %w", err)
	}

	console.Info("Created category %s (#%d) under %s.", output.ColorLabel(child.Label, false), child.ID, parent.Label)
	if len(parent.Children) > 0 {
		console.Tip("Shares under %s were re-spread evenly. Use 'classtree share' to adjust them.", parent.Label)
	}
	renderTree(ctx)

	return nil
}
