package actions

import (
	"errors"
	"fmt"

	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/tree"
)

// NormalizeOptions contains options for the normalize command
type NormalizeOptions struct {
	// MinQty overrides the configured minimum when positive
	MinQty int
}

// NormalizeAction grows the global qty until every category meets the
// minimum. The tree is left untouched when normalization cannot converge.
func NormalizeAction(ctx *runtime.Context, opts NormalizeOptions) error {
	console := ctx.Console

	minQty := opts.MinQty
	if minQty <= 0 {
		minQty = ctx.Settings.MinNodeQty
	}

	next, err := ctx.Tree.Normalize(minQty)
	if err != nil {
		var convErr *tree.ConvergenceError
		if errors.As(err, &convErr) {
			console.Warn("Gave up after %d passes; the tree was left untouched.", convErr.Iterations)
			console.Tip("Categories with a share of 0 can never meet the minimum. Check 'classtree show'.")
		}
		return err
	}

	if !ctx.Swap(next) {
		console.Info("Every category already meets the minimum qty of %d.", minQty)
		return nil
	}

	if err := ctx.Save(); err != nil {
		return fmt.Errorf("failed to save tree: %w", err)
	}

	if ctx.Tree.Qty > ctx.Settings.MaxGlobalQty {
		console.Warn("Normalized qty %d exceeds the configured maximum of %d.", ctx.Tree.Qty, ctx.Settings.MaxGlobalQty)
	}

	console.Info("Normalized to a global qty of %d.", ctx.Tree.Qty)
	renderTree(ctx)

	return nil
}
