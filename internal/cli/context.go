package cli

import (
	"path/filepath"

	"classtree.dev/classtree/internal/runtime"
)

// workspacePaths returns the tree and settings paths under the
// workspace directory.
func workspacePaths(dir string) (string, string) {
	base := filepath.Join(dir, ".classtree")
	return filepath.Join(base, "tree.json"), filepath.Join(base, "settings.yaml")
}

// getContext loads the runtime context for the configured workspace
func getContext() (*runtime.Context, error) {
	treePath, settingsPath := workspacePaths(workspaceDir)
	return runtime.GetContext(treePath, settingsPath)
}
