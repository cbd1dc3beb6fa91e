package actions_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"classtree.dev/classtree/internal/actions"
)

func TestShowAction(t *testing.T) {
	t.Run("renders the full tree", func(t *testing.T) {
		ctx, buf := newTestContext(t, sampleTree())

		err := actions.ShowAction(ctx, actions.ShowOptions{})
		require.NoError(t, err)

		got := buf.String()
		require.Contains(t, got, "◉ Intake [100% • 100000]")
		require.Contains(t, got, "├─◯ Web [25% • 25000]")
		require.Contains(t, got, "└─◯ Partner [50% • 50000]")
	})

	t.Run("renders the short form", func(t *testing.T) {
		ctx, buf := newTestContext(t, sampleTree())

		err := actions.ShowAction(ctx, actions.ShowOptions{Short: true})
		require.NoError(t, err)

		got := buf.String()
		require.Contains(t, got, "◉▸Intake")
		require.NotContains(t, got, "[100%")
	})

	t.Run("shows ids on request", func(t *testing.T) {
		ctx, buf := newTestContext(t, sampleTree())

		err := actions.ShowAction(ctx, actions.ShowOptions{ShowIDs: true})
		require.NoError(t, err)

		require.Contains(t, buf.String(), "#0")
		require.Contains(t, buf.String(), "#5")
	})

	t.Run("puts the root last when reversed", func(t *testing.T) {
		ctx, buf := newTestContext(t, sampleTree())

		err := actions.ShowAction(ctx, actions.ShowOptions{Reverse: true})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Contains(t, lines[len(lines)-1], "Intake")
	})

	t.Run("prints the encoded document on request", func(t *testing.T) {
		ctx, buf := newTestContext(t, sampleTree())

		err := actions.ShowAction(ctx, actions.ShowOptions{Encoded: true})
		require.NoError(t, err)

		got := buf.String()
		require.Contains(t, got, `"label": "Intake"`)
		require.NotContains(t, got, `"qty"`)
		require.NotContains(t, got, "◉")
	})

	t.Run("points at normalize when categories are underfed", func(t *testing.T) {
		ctx, buf := newTestContext(t, sampleTree().DistributeQty(0))

		err := actions.ShowAction(ctx, actions.ShowOptions{})
		require.NoError(t, err)

		got := buf.String()
		require.Contains(t, got, "(underfed)")
		require.Contains(t, got, "classtree normalize")
	})
}
