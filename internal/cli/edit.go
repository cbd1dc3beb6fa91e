package cli

import (
	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/tui"
)

// newEditCmd creates the edit command
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit",
		Aliases: []string{"e"},
		Short:   "Edit the tree in an interactive terminal editor",
		Long: `Edit the tree in an interactive terminal editor.

Move the cursor with the arrow keys. 'a' adds a child under the cursor, 'd'
deletes the subtree, 'r' renames, 's' sets the share, 'D' distributes a new
global qty, 'n' normalizes. 'q' quits; every change is saved as it happens.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			return tui.Run(ctx, getLogger())
		},
	}

	return cmd
}
