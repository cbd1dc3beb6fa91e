package treefile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"classtree.dev/classtree/internal/config"
	"classtree.dev/classtree/internal/tree"
)

func sampleTree() *tree.Node {
	return &tree.Node{
		ID:    0,
		Label: "Intake",
		Qty:   100000,
		Share: 100,
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

func TestNew(t *testing.T) {
	root := New(config.DefaultSettings())

	require.Equal(t, 0, root.ID)
	require.Equal(t, "Intake", root.Label)
	require.Equal(t, 100000, root.Qty)
	require.Equal(t, 100, root.Share)
	require.Empty(t, root.Children)

	// The first created category must not collide with the root.
	require.Equal(t, 1, tree.NewLeaf(root).ID)
}

func TestSaveLoad(t *testing.T) {
	t.Run("round-trips a document without loss", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tree.json")
		require.NoError(t, Save(path, sampleTree()))

		got, err := Load(path)
		require.NoError(t, err)
		if diff := cmp.Diff(sampleTree(), got); diff != "" {
			t.Errorf("document changed in flight (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps children in insertion order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tree.json")
		require.NoError(t, Save(path, sampleTree()))

		got, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 4, 5, 2, 3}, preorderIDs(got))
	})

	t.Run("creates parent directories on save", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deep", "down", "tree.json")
		require.NoError(t, Save(path, sampleTree()))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("rejects a nil tree", func(t *testing.T) {
		err := Save(filepath.Join(t.TempDir(), "tree.json"), nil)
		require.Error(t, err)
	})

	t.Run("writes explicit children arrays", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tree.json")
		require.NoError(t, Save(path, New(config.DefaultSettings())))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"id": 0,
			"label": "Intake",
			"qty": 100000,
			"share": 100,
			"children": []
		}`, string(data))
	})
}

func TestLoad(t *testing.T) {
	t.Run("reports a missing document as not-exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "tree.json"))
		require.Error(t, err)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("reports garbage as a document error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tree.json")
		require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrBadDocument)

		var de *DocumentError
		require.True(t, errors.As(err, &de))
		require.Equal(t, path, de.Path)
	})
}

func preorderIDs(n *tree.Node) []int {
	ids := []int{n.ID}
	for _, c := range n.Children {
		ids = append(ids, preorderIDs(c)...)
	}
	return ids
}
