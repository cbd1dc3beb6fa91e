package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newDeleteCmd creates the delete command
func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"d", "rm"},
		Short:   "Delete a category and its whole subtree",
		Long: `Delete a category and its whole subtree.

The shares of the remaining siblings are re-spread evenly. Prompts for
confirmation unless --force is passed. The root category cannot be deleted.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.DeleteAction(ctx, actions.DeleteOptions{
				ID:    id,
				Force: force,
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
