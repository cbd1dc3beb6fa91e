package actions

import (
	"strings"

	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/tree"
)

// renderTree prints the working tree below an action's status lines.
func renderTree(ctx *runtime.Context) {
	renderer := output.NewTreeRenderer(output.RenderOptions{
		MinQty: ctx.Settings.MinNodeQty,
		Color:  output.ColorEnabled(),
	})
	ctx.Console.Page(strings.Join(renderer.Render(ctx.Tree), "\n"))
	ctx.Console.Newline()
}

// subtreeSize counts the node and all of its descendants
func subtreeSize(n *tree.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Children {
		count += subtreeSize(c)
	}
	return count
}

// Pluralize returns the singular or plural form based on count
func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}
