package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/utils"
)

// IsTTY returns true if we can use a TTY for interactive TUI
func IsTTY() bool {
	// First check if stdin/stdout are terminals
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Run opens the interactive tree editor on the given context. It blocks
// until the user quits and returns the last save failure, if any.
func Run(rtx *runtime.Context, logger *zap.Logger) error {
	if !utils.IsInteractive() {
		return fmt.Errorf("the editor needs an interactive terminal")
	}
	if !IsTTY() {
		return fmt.Errorf("the editor needs a terminal; stdin or stdout is not a TTY")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := newEditorModel(rtx, logger)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := finalModel.(editorModel); ok && final.saveErr != nil {
		return fmt.Errorf("failed to save tree: %w", final.saveErr)
	}

	return nil
}
