package cli

import (
	"time"

	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newWatchCmd creates the watch command
func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the tree whenever the document changes on disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.WatchAction(cmd.Context(), ctx, actions.WatchOptions{
				Debounce: debounce,
				Logger:   getLogger(),
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "How long rapid saves are batched before reloading")

	return cmd
}
