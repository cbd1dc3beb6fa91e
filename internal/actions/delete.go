package actions

import (
	"fmt"

	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/utils"
)

// DeleteOptions contains options for the delete command
type DeleteOptions struct {
	ID    int
	Force bool
}

// DeleteAction removes a category and its whole subtree. The shares of
// the remaining siblings are re-spread evenly.
func DeleteAction(ctx *runtime.Context, opts DeleteOptions) error {
	console := ctx.Console

	node := ctx.Tree.Find(opts.ID)
	if node == nil {
		return NewNodeNotFoundError(opts.ID)
	}
	if node == ctx.Tree {
		return fmt.Errorf("cannot delete the root category %s", node.Label)
	}

	if !opts.Force {
		if !utils.IsInteractive() {
			return fmt.Errorf("refusing to delete %s without --force in non-interactive mode", node.Label)
		}

		descendants := subtreeSize(node) - 1
		message := fmt.Sprintf("Delete category %s?", node.Label)
		if descendants > 0 {
			message = fmt.Sprintf("Delete category %s and its %d %s?",
				node.Label, descendants, Pluralize("descendant", "descendants", descendants))
		}

		confirmed, err := promptConfirm(message)
		if err != nil {
			return err
		}
		if !confirmed {
			console.Info("Aborted.")
			return nil
		}
	}

	next := ctx.Tree.Delete(opts.ID)
	if !ctx.Swap(next) {
		return NewNodeNotFoundError(opts.ID)
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to save tree: %w", err)
	}

	console.Info("Deleted category %s.", output.ColorLabel(node.Label, false))
	renderTree(ctx)

	return nil
}
