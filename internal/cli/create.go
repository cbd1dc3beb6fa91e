package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newCreateCmd creates the create command
func newCreateCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:     "create <parent-id>",
		Aliases: []string{"c"},
		Short:   "Create a new category under the given parent",
		Long: `Create a new category under the given parent and re-spread the sibling
shares evenly.

If no label is specified, you will be prompted for one; a piped label on stdin
works too. The new category starts with qty 0 until the next distribute.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.CreateAction(ctx, actions.CreateOptions{
				ParentID: parentID,
				Label:    label,
			})
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Label for the new category")

	return cmd
}
