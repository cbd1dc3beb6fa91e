package actions_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"classtree.dev/classtree/internal/config"
	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/tree"
	"classtree.dev/classtree/internal/treefile"
)

// sampleTree builds the intake fixture used across the action tests:
//
//	◉ Intake (#0, 100%, 100000)
//	├─◯ Web (#1, 25%, 25000)
//	│ ├─◯ Organic (#4, 50%, 12500)
//	│ └─◯ Paid (#5, 50%, 12500)
//	├─◯ Phone (#2, 25%, 25000)
//	└─◯ Partner (#3, 50%, 50000)
func sampleTree() *tree.Node {
	return &tree.Node{
		ID: 0, Label: "Intake", Qty: 100000, Share: 100,
		Children: []*tree.Node{
			{ID: 1, Label: "Web", Qty: 25000, Share: 25, Children: []*tree.Node{
				{ID: 4, Label: "Organic", Qty: 12500, Share: 50},
				{ID: 5, Label: "Paid", Qty: 12500, Share: 50},
			}},
			{ID: 2, Label: "Phone", Qty: 25000, Share: 25},
			{ID: 3, Label: "Partner", Qty: 50000, Share: 50},
		},
	}
}

// newTestContext seeds a workspace in a temp dir and returns a context
// whose console writes into the returned buffer.
func newTestContext(t *testing.T, root *tree.Node) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	t.Setenv("CLASSTREE_TEST_NO_INTERACTIVE", "1")

	dir := t.TempDir()
	treePath := filepath.Join(dir, "tree.json")
	settingsPath := filepath.Join(dir, "settings.yaml")

	settings := config.DefaultSettings()
	require.NoError(t, config.Save(settingsPath, settings))
	require.NoError(t, treefile.Save(treePath, root))

	ctx, err := runtime.GetContext(treePath, settingsPath)
	require.NoError(t, err)

	var buf bytes.Buffer
	ctx.Console = output.NewConsoleTo(&buf)

	return ctx, &buf
}

// reload reads the persisted tree back from disk.
func reload(t *testing.T, ctx *runtime.Context) *tree.Node {
	t.Helper()
	root, err := treefile.Load(ctx.TreePath)
	require.NoError(t, err)
	return root
}

// drainStdin points os.Stdin at an already-closed pipe so actions that
// peek at piped input see it empty instead of blocking.
func drainStdin(t *testing.T) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = old })
}
