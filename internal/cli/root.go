package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "classtree.dev/classtree/internal/demo" // Register demo context factory
)

var (
	workspaceDir string
	verbose      bool
	logger       *zap.Logger
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "classtree",
		Short: "Classtree is a command line tool for managing weighted classification trees",
		Long: `Classtree is a command line tool for managing weighted classification trees.

Each category receives a share of its parent's quantity; distributing a global
qty down the tree assigns every category its piece. The tree lives in a JSON
document under .classtree/ next to your data.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&workspaceDir, "dir", "C", ".", "Directory holding the .classtree workspace")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug detail to the log file")

	rootCmd.AddCommand(
		newInitCmd(),
		newShowCmd(),
		newCreateCmd(),
		newDeleteCmd(),
		newRenameCmd(),
		newShareCmd(),
		newDistributeCmd(),
		newNormalizeCmd(),
		newExportCmd(),
		newWatchCmd(),
		newEditCmd(),
	)

	return rootCmd
}

// getLogger returns the logger built for this invocation
func getLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
