// Package tui provides the interactive tree editor for classtree.
//
// It handles:
//   - Cursor navigation over the rendered tree (using bubbletea)
//   - Inline prompts for labels, shares and quantities (using bubbles)
//   - Terminal styling and colors (using lipgloss)
package tui
