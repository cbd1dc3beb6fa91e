package cli

import (
	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newExportCmd creates the export command
func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the tree as a label-only JSON document",
		Long: `Export the tree as a label-only JSON document.

Ids, shares and quantities are internal bookkeeping and stay out of the
export; the document carries just labels and nesting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := getContext()
			if err != nil {
				return err
			}

			return actions.ExportAction(ctx, actions.ExportOptions{Out: out})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}
