package actions

import (
	"fmt"

	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
)

// ShareOptions contains options for the share command
type ShareOptions struct {
	ID    int
	Share int
}

// ShareAction sets the share of a category and re-spreads what remains
// of the parent's 100% across its siblings.
func ShareAction(ctx *runtime.Context, opts ShareOptions) error {
	console := ctx.Console

	if opts.Share < 0 || opts.Share > 100 {
		return fmt.Errorf("share must be between 0 and 100, got %d", opts.Share)
	}

	node := ctx.Tree.Find(opts.ID)
	if node == nil {
		return NewNodeNotFoundError(opts.ID)
	}

	siblings := ctx.Tree.Siblings(opts.ID)
	isRoot := node == ctx.Tree

	next := ctx.Tree.DistributeShare(opts.ID, opts.Share)
	if !ctx.Swap(next) {
		console.Info("Share of %s is already %d%%.", node.Label, opts.Share)
		return nil
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to save tree: %w", err)
	}

	console.Info("Set share of %s to %d%%.", output.ColorLabel(node.Label, isRoot), opts.Share)
	if len(siblings) > 0 {
		console.Info("Re-spread the remainder across %d sibling %s.",
			len(siblings), Pluralize("share", "shares", len(siblings)))
	}
	renderTree(ctx)

	return nil
}
