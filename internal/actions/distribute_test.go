package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"classtree.dev/classtree/internal/actions"
)

func TestDistributeAction(t *testing.T) {
	t.Run("spreads a new global qty top-down", func(t *testing.T) {
		ctx, buf := newTestContext(t, sampleTree())

		err := actions.DistributeAction(ctx, actions.DistributeOptions{Qty: 50000})
		require.NoError(t, err)

		root := reload(t, ctx)
		require.Equal(t, 50000, root.Qty)
		require.Equal(t, 12500, root.Find(1).Qty)
		require.Equal(t, 12500, root.Find(2).Qty)
		require.Equal(t, 25000, root.Find(3).Qty)
		require.Equal(t, 6250, root.Find(4).Qty)
		require.Equal(t, 6250, root.Find(5).Qty)

		require.Contains(t, buf.String(), "Distributed 50000 across 6 categories.")
	})

	t.Run("truncates on integer division", func(t *testing.T) {
		ctx, _ := newTestContext(t, sampleTree())

		err := actions.DistributeAction(ctx, actions.DistributeOptions{Qty: 999})
		require.NoError(t, err)

		root := reload(t, ctx)
		require.Equal(t, 249, root.Find(1).Qty)
		require.Equal(t, 499, root.Find(3).Qty)
	})

	t.Run("rejects a negative qty", func(t *testing.T) {
		ctx, _ := newTestContext(t, sampleTree())

		err := actions.DistributeAction(ctx, actions.DistributeOptions{Qty: -5})
		require.Error(t, err)
		require.Contains(t, err.Error(), "must not be negative")
	})

	t.Run("rejects a qty above the configured maximum", func(t *testing.T) {
		ctx, _ := newTestContext(t, sampleTree())

		err := actions.DistributeAction(ctx, actions.DistributeOptions{Qty: ctx.Settings.MaxGlobalQty + 1})
		require.Error(t, err)
		require.Contains(t, err.Error(), "exceeds the configured maximum")

		require.Equal(t, sampleTree(), reload(t, ctx))
	})
}
