package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// GetDepthColor returns a styled string with the color from CLASSTREE_COLORS
// for the given tree depth
func GetDepthColor(text string, depth int) string {
	if len(CLASSTREE_COLORS) == 0 {
		return text
	}

	color := CLASSTREE_COLORS[depth%len(CLASSTREE_COLORS)]

	// Convert RGB to hex color
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))

	style := lipgloss.NewStyle().
		Foreground(hexColor)

	return style.Render(text)
}

// ColorLabel colors a category label, highlighting the root
func ColorLabel(label string, isRoot bool) string {
	if isRoot {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(label)
}

// ColorUnderfed colors the underfed marker
func ColorUnderfed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorEnabled reports whether styled output should be produced: stdout
// must be a terminal and NO_COLOR must be unset.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
