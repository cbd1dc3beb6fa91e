package output

import (
	"fmt"
	"strconv"
	"strings"

	"classtree.dev/classtree/internal/tree"
)

const (
	// RootSymbol is the symbol used for the tree root in diagrams
	RootSymbol = "◉"
	// NodeSymbol is the symbol used for every other node in diagrams
	NodeSymbol = "◯"
)

// RenderOptions configures rendering behavior
type RenderOptions struct {
	// Reverse emits the leaves first and the root last.
	Reverse bool
	// Short drops the per-node stats bracket.
	Short bool
	// ShowIDs adds the node id to the stats bracket.
	ShowIDs bool
	// MinQty marks nodes whose qty falls below it; zero disables the
	// marker.
	MinQty int
	// Color applies the depth palette and dim styling.
	Color bool
}

// TreeRenderer renders classification trees as box diagrams
type TreeRenderer struct {
	opts RenderOptions
}

// NewTreeRenderer creates a new tree renderer
func NewTreeRenderer(opts RenderOptions) *TreeRenderer {
	return &TreeRenderer{opts: opts}
}

// Render renders the subtree rooted at root, one line per node.
func (r *TreeRenderer) Render(root *tree.Node) []string {
	if root == nil {
		return nil
	}

	lines := r.nodeLines(root, "", "", true, 0)

	if r.opts.Reverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	return lines
}

// RenderString renders the tree as a single page of text.
func (r *TreeRenderer) RenderString(root *tree.Node) string {
	return strings.Join(r.Render(root), "\n") + "\n"
}

func (r *TreeRenderer) nodeLines(n *tree.Node, prefix, connector string, lastChild bool, depth int) []string {
	glyphs := connector + r.symbol(depth)
	if r.opts.Color {
		glyphs = GetDepthColor(glyphs, depth)
	}

	label := n.Label
	if r.opts.Color {
		label = ColorLabel(label, depth == 0)
	}

	line := prefix + glyphs
	if r.opts.Short {
		line += "▸" + label
	} else {
		line += " " + label + " " + r.formatStats(n)
	}

	if r.opts.MinQty > 0 && n.Qty < r.opts.MinQty {
		marker := "(underfed)"
		if r.opts.Color {
			marker = ColorUnderfed(marker)
		}
		line += " " + marker
	}

	result := []string{line}

	// The bar under this node continues its own sibling run, so it only
	// applies below the root.
	childPrefix := prefix
	if depth > 0 {
		bar := "│ "
		if lastChild {
			bar = "  "
		}
		if r.opts.Color {
			bar = GetDepthColor(bar, depth)
		}
		childPrefix += bar
	}

	for i, c := range n.Children {
		last := i == len(n.Children)-1

		conn := "├─"
		if last {
			if r.opts.Reverse {
				conn = "┌─"
			} else {
				conn = "└─"
			}
		}

		result = append(result, r.nodeLines(c, childPrefix, conn, last, depth+1)...)
	}

	return result
}

func (r *TreeRenderer) symbol(depth int) string {
	if depth == 0 {
		return RootSymbol
	}
	return NodeSymbol
}

func (r *TreeRenderer) formatStats(n *tree.Node) string {
	var parts []string

	if r.opts.ShowIDs {
		parts = append(parts, fmt.Sprintf("#%d", n.ID))
	}

	parts = append(parts, fmt.Sprintf("%d%%", n.Share))
	parts = append(parts, strconv.Itoa(n.Qty))

	stats := "[" + strings.Join(parts, " • ") + "]"
	if r.opts.Color {
		return ColorDim(stats)
	}
	return stats
}
