package actions

import (
	"encoding/json"
	"fmt"
	"os"

	"classtree.dev/classtree/internal/runtime"
)

// ExportOptions contains options for the export command
type ExportOptions struct {
	// Out is the file to write to; empty prints to the console
	Out string
}

// ExportAction writes the tree as a label-only JSON document. Ids,
// quantities and shares are internal bookkeeping and stay out of it.
func ExportAction(ctx *runtime.Context, opts ExportOptions) error {
	console := ctx.Console

	encoded := ctx.Tree.Encode()
	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}

	if opts.Out == "" {
		console.Page(string(data))
		console.Newline()
		return nil
	}

	if err := os.WriteFile(opts.Out, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Out, err)
	}

	count := subtreeSize(ctx.Tree)
	console.Info("Exported %d %s to %s.", count, Pluralize("category", "categories", count), opts.Out)

	return nil
}
