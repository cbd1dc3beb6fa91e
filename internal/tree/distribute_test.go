package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDistributeQty(t *testing.T) {
	t.Run("splits the total by share at every level", func(t *testing.T) {
		got := intakeTree().DistributeQty(100000)

		require.Equal(t, 100000, got.Qty)
		require.Equal(t, 25000, got.Find(1).Qty)
		require.Equal(t, 25000, got.Find(2).Qty)
		require.Equal(t, 50000, got.Find(3).Qty)
		require.Equal(t, 12500, got.Find(4).Qty)
		require.Equal(t, 12500, got.Find(5).Qty)
	})

	t.Run("keeps every child proportional to its parent", func(t *testing.T) {
		got := intakeTree().DistributeQty(99999)

		var check func(p *Node)
		check = func(p *Node) {
			for _, c := range p.Children {
				require.Equal(t, p.Qty*c.Share/100, c.Qty, "node %d", c.ID)
				check(c)
			}
		}
		check(got)
	})

	t.Run("truncates on integer division", func(t *testing.T) {
		tr := &Node{ID: 0, Share: 100, Children: []*Node{
			{ID: 1, Share: 33, Children: []*Node{
				{ID: 2, Share: 33},
			}},
		}}
		got := tr.DistributeQty(100)

		require.Equal(t, 33, got.Find(1).Qty)
		require.Equal(t, 10, got.Find(2).Qty)
	})

	t.Run("recomputes from scratch on every run", func(t *testing.T) {
		got := intakeTree().DistributeQty(100000).DistributeQty(50000)

		require.Equal(t, 12500, got.Find(1).Qty)
		require.Equal(t, 6250, got.Find(4).Qty)
	})

	t.Run("leaves the input tree untouched", func(t *testing.T) {
		tr := intakeTree()
		tr.DistributeQty(100000)

		if diff := cmp.Diff(intakeTree(), tr); diff != "" {
			t.Errorf("input tree changed (-want +got):\n%s", diff)
		}
	})
}

func TestDistributeShare(t *testing.T) {
	t.Run("sets the node and rebalances its siblings", func(t *testing.T) {
		got := intakeTree().DistributeShare(3, 60)

		require.Equal(t, 60, got.Find(3).Share)
		require.Equal(t, 20, got.Find(1).Share)
		require.Equal(t, 20, got.Find(2).Share)

		// Children of a rebalanced sibling are untouched.
		require.Equal(t, 50, got.Find(4).Share)
		require.Equal(t, 50, got.Find(5).Share)
	})

	t.Run("lifts sibling shares to one when division hits zero", func(t *testing.T) {
		got := intakeTree().DistributeShare(3, 99)

		require.Equal(t, 99, got.Find(3).Share)
		require.Equal(t, 1, got.Find(1).Share)
		require.Equal(t, 1, got.Find(2).Share)
	})

	t.Run("sets only the target when it has no siblings", func(t *testing.T) {
		tr := intakeTree()
		got := tr.DistributeShare(0, 80)

		require.Equal(t, 80, got.Share)
		require.Same(t, tr.Children[0], got.Children[0])
		require.Same(t, tr.Children[1], got.Children[1])
		require.Same(t, tr.Children[2], got.Children[2])
	})

	t.Run("handles an only child", func(t *testing.T) {
		tr := &Node{ID: 0, Share: 100, Children: []*Node{
			{ID: 1, Share: 100},
		}}
		require.Equal(t, 40, tr.DistributeShare(1, 40).Find(1).Share)
	})

	t.Run("returns the same tree for an absent id", func(t *testing.T) {
		tr := intakeTree()
		require.Same(t, tr, tr.DistributeShare(999, 50))
	})

	t.Run("leaves the input tree untouched", func(t *testing.T) {
		tr := intakeTree()
		tr.DistributeShare(3, 60)

		if diff := cmp.Diff(intakeTree(), tr); diff != "" {
			t.Errorf("input tree changed (-want +got):\n%s", diff)
		}
	})
}
