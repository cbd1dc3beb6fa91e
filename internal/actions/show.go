package actions

import (
	"encoding/json"
	"fmt"
	"strings"

	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
)

// ShowOptions contains options for the show command
type ShowOptions struct {
	Reverse bool
	Short   bool
	ShowIDs bool
	// Encoded prints the label-only JSON document instead of the diagram
	Encoded bool
}

// ShowAction displays the classification tree
func ShowAction(ctx *runtime.Context, opts ShowOptions) error {
	if opts.Encoded {
		data, err := json.MarshalIndent(ctx.Tree.Encode(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}

		ctx.Console.Page(string(data))
		ctx.Console.Newline()
		return nil
	}

	renderer := output.NewTreeRenderer(output.RenderOptions{
		Reverse: opts.Reverse,
		Short:   opts.Short,
		ShowIDs: opts.ShowIDs,
		MinQty:  ctx.Settings.MinNodeQty,
		Color:   output.ColorEnabled(),
	})

	ctx.Console.Page(strings.Join(renderer.Render(ctx.Tree), "\n"))
	ctx.Console.Newline()

	if ctx.Tree.Underfed(ctx.Settings.MinNodeQty) {
		ctx.Console.Tip("Some categories sit below the minimum qty of %d. Run 'classtree normalize' to grow the tree.", ctx.Settings.MinNodeQty)
	}

	return nil
}
