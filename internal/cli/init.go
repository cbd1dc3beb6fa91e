package cli

import (
	"github.com/spf13/cobra"

	"classtree.dev/classtree/internal/actions"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Initialize a classification tree in the workspace",
		Long: `Initialize a classification tree in the workspace.

Seeds .classtree/tree.json with a single root category carrying the configured
global qty, and writes .classtree/settings.yaml with the limits. An existing
tree is kept unless --reset is passed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			treePath, settingsPath := workspacePaths(workspaceDir)
			return actions.InitAction(treePath, settingsPath, actions.InitOptions{Reset: reset})
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Replace an existing tree with a fresh root")

	return cmd
}
