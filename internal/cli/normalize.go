package cli

import (
	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newNormalizeCmd creates the normalize command
func newNormalizeCmd() *cobra.Command {
	var minQty int

	cmd := &cobra.Command{
		Use:     "normalize",
		Aliases: []string{"norm"},
		Short:   "Grow the global qty until every category meets the minimum",
		Long: `Grow the global qty until every category meets the minimum.

The global qty is raised in steps of 1000 and re-distributed after each step.
Gives up after 10000 passes and leaves the tree untouched; a category with a
share of 0 can never converge.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.NormalizeAction(ctx, actions.NormalizeOptions{MinQty: minQty})
		},
	}

	cmd.Flags().IntVar(&minQty, "min", 0, "Override the configured minimum qty")

	return cmd
}
