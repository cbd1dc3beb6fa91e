package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/tree"
)

// completeCategories is a helper for cobra.ValidArgsFunction that returns
// every category id in the workspace tree, labeled for display.
func completeCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := getContext()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var out []string
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		out = append(out, strconv.Itoa(n.ID)+"\t"+n.Label)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(ctx.Tree)

	return out, cobra.ShellCompDirectiveNoFileComp
}
