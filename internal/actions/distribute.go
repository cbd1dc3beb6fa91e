package actions

import (
	"fmt"

	"classtree.dev/classtree/internal/runtime"
)

// DistributeOptions contains options for the distribute command
type DistributeOptions struct {
	Qty int
}

// DistributeAction pushes a new global qty down the tree, assigning
// each category its share of the parent's quantity.
func DistributeAction(ctx *runtime.Context, opts DistributeOptions) error {
	console := ctx.Console

	if opts.Qty < 0 {
		return fmt.Errorf("qty must not be negative, got %d", opts.Qty)
	}
	if opts.Qty > ctx.Settings.MaxGlobalQty {
		return fmt.Errorf("qty %d exceeds the configured maximum of %d", opts.Qty, ctx.Settings.MaxGlobalQty)
	}

	next := ctx.Tree.DistributeQty(opts.Qty)
	if !ctx.Swap(next) {
		return nil
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to save tree: %w", err)
	}

	count := subtreeSize(ctx.Tree)
	console.Info("Distributed %d across %d %s.", opts.Qty, count, Pluralize("category", "categories", count))
	renderTree(ctx)

	return nil
}
