package actions

import (
	"fmt"

	"classtree.dev/classtree/internal/config"
	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/treefile"
)

// InitOptions contains options for the init command
type InitOptions struct {
	Reset bool
}

// InitAction seeds a new workspace: a settings file with the configured
// limits and a tree document holding the root category.
func InitAction(treePath, settingsPath string, opts InitOptions) error {
	console := output.NewConsole()

	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	wasInitialized := false
	if _, err := treefile.Load(treePath); err == nil {
		wasInitialized = true
	}

	if wasInitialized && !opts.Reset {
		console.Info("Classtree is already initialized; pass --reset to start over.")
		return nil
	}

	if err := config.Save(settingsPath, settings); err != nil {
		return err
	}

	root := treefile.New(settings)
	if err := treefile.Save(treePath, root); err != nil {
		return err
	}

	if wasInitialized {
		console.Info("Reinitializing Classtree...")
	} else {
		console.Info("Welcome to Classtree!")
	}
	console.Newline()
	console.Info("Seeded %s with a global qty of %d.", output.ColorLabel(root.Label, true), root.Qty)

	return nil
}
