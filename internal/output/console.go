package output

import (
	"fmt"
	"io"
	"os"
)

// Console provides user-facing output
type Console struct {
	writer  io.Writer
	verbose bool
}

// NewConsole creates a new console writing to stdout
func NewConsole() *Console {
	return &Console{
		writer: os.Stdout,
	}
}

// NewConsoleTo creates a console writing to w
func NewConsoleTo(w io.Writer) *Console {
	return &Console{
		writer: w,
	}
}

// SetVerbose toggles debug output
func (c *Console) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// Info writes an info message
func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.writer, format+"\n", args...)
}

// Page writes a block of preformatted output
func (c *Console) Page(content string) {
	fmt.Fprint(c.writer, content)
}

// Newline writes a newline
func (c *Console) Newline() {
	fmt.Fprintln(c.writer)
}

// Warn writes a warning message
func (c *Console) Warn(format string, args ...interface{}) {
	fmt.Fprintf(c.writer, "⚠️  "+format+"\n", args...)
}

// Debug writes a debug message, shown only in verbose mode
func (c *Console) Debug(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(c.writer, format+"\n", args...)
}

// Tip writes a tip message
func (c *Console) Tip(format string, args ...interface{}) {
	fmt.Fprintf(c.writer, "💡 "+format+"\n", args...)
}
