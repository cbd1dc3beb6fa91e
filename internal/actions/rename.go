package actions

import (
	"fmt"

	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/utils"
)

// RenameOptions contains options for the rename command
type RenameOptions struct {
	ID       int
	NewLabel string
}

// RenameAction changes the label of a category
func RenameAction(ctx *runtime.Context, opts RenameOptions) error {
	console := ctx.Console

	node := ctx.Tree.Find(opts.ID)
	if node == nil {
		return NewNodeNotFoundError(opts.ID)
	}

	// Determine new label
	newLabel := utils.CleanLabel(opts.NewLabel)
	if newLabel == "" {
		if !utils.IsInteractive() {
			return fmt.Errorf("a label is required in non-interactive mode")
		}

		entered, err := promptLabel("Enter new label:", node.Label)
		if err != nil {
			return err
		}
		newLabel = utils.CleanLabel(entered)
	}

	if newLabel == "" {
		return fmt.Errorf("invalid label")
	}

	if newLabel == node.Label {
		console.Info("Category is already named %s.", newLabel)
		return nil
	}

	isRoot := node == ctx.Tree

	next := ctx.Tree.UpdateLabel(opts.ID, newLabel)
	if !ctx.Swap(next) {
		return NewNodeNotFoundError(opts.ID)
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to save tree: %w", err)
	}

	console.Info("Renamed %s to %s.", node.Label, output.ColorLabel(newLabel, isRoot))

	return nil
}
