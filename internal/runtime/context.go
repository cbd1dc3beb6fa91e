package runtime

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"classtree.dev/classtree/internal/config"
	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/tree"
	"classtree.dev/classtree/internal/treefile"
)

// ErrNotInitialized indicates that no tree document exists at the
// configured path.
var ErrNotInitialized = errors.New("classtree not initialized")

// DemoContextFactory is a function that creates a demo context.
// This is set by the demo package to avoid circular imports.
var DemoContextFactory func() *Context

// Context provides access to the working tree and output for commands
type Context struct {
	// Tree is the current root of the classification tree.
	Tree *tree.Node

	// Settings holds the limits loaded from the settings file.
	Settings *config.Settings

	// Console is the user-facing output writer.
	Console *output.Console

	// TreePath is where the tree document is persisted.
	TreePath string

	// SettingsPath is where the settings document lives.
	SettingsPath string

	// ReadOnly suppresses Save. Demo contexts are read-only.
	ReadOnly bool
}

// IsDemoMode returns true if CLASSTREE_DEMO environment variable is set
func IsDemoMode() bool {
	return os.Getenv("CLASSTREE_DEMO") != ""
}

// GetContext loads the settings and the tree document and returns a context
// ready for use. In demo mode it returns the registered demo context instead.
func GetContext(treePath, settingsPath string) (*Context, error) {
	if IsDemoMode() && DemoContextFactory != nil {
		return DemoContextFactory(), nil
	}

	settings, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	root, err := treefile.Load(treePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: run 'classtree init' first", ErrNotInitialized)
		}
		return nil, err
	}

	return &Context{
		Tree:         root,
		Settings:     settings,
		Console:      output.NewConsole(),
		TreePath:     treePath,
		SettingsPath: settingsPath,
	}, nil
}

// Swap replaces the working tree and reports whether anything changed.
// The tree operations hand back the same root when nothing matched, so a
// pointer compare is enough.
func (c *Context) Swap(next *tree.Node) bool {
	if next == c.Tree {
		return false
	}
	c.Tree = next
	return true
}

// Save persists the working tree to the tree path. Read-only contexts
// skip the write.
func (c *Context) Save() error {
	if c.ReadOnly {
		return nil
	}
	return treefile.Save(c.TreePath, c.Tree)
}
