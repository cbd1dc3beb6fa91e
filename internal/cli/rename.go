package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newRenameCmd creates the rename command
func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "rename <id> [label]",
		Aliases:           []string{"mv"},
		Short:             "Change the label of a category",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			newLabel := ""
			if len(args) > 1 {
				newLabel = args[1]
			}

			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.RenameAction(ctx, actions.RenameOptions{
				ID:       id,
				NewLabel: newLabel,
			})
		},
	}

	return cmd
}
