package cli

import (
	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	var (
		reverse bool
		short   bool
		showIDs bool
		encoded bool
	)

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s"},
		Short:   "Show the classification tree with shares and quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.ShowAction(ctx, actions.ShowOptions{
				Reverse: reverse,
				Short:   short,
				ShowIDs: showIDs,
				Encoded: encoded,
			})
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Print the tree upside down")
	cmd.Flags().BoolVar(&short, "short", false, "Hide share and qty stats")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show category ids next to each label")
	cmd.Flags().BoolVar(&encoded, "encoded", false, "Print the label-only JSON document instead of the diagram")

	return cmd
}
