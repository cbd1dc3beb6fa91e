package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newShareCmd creates the share command
func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <id> <percent>",
		Short: "Set the share of a category and re-spread its siblings",
		Long: `Set the share of a category and re-spread its siblings.

The remaining percentage is divided evenly among the siblings, each receiving
at least 1% so rounding never pushes a category to zero. Quantities are not
recomputed; run 'classtree distribute' afterwards.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			share, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid share %q", args[1])
			}

			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.ShareAction(ctx, actions.ShareOptions{
				ID:    id,
				Share: share,
			})
		},
	}

	return cmd
}
