package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newDistributeCmd creates the distribute command
func newDistributeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "distribute <qty>",
		Aliases: []string{"dist"},
		Short:   "Spread a new global qty down the whole tree",
		Long: `Spread a new global qty down the whole tree.

Every category receives its share of its parent's quantity, truncated to an
integer. Quantities a level down are computed from the already-truncated
parent value, so totals can drift slightly below the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid qty %q", args[0])
			}

			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.DistributeAction(ctx, actions.DistributeOptions{Qty: qty})
		},
	}

	return cmd
}
