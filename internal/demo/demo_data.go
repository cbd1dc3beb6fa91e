// Package demo provides a simulated workspace for testing CLI and TUI
// interactions without requiring an initialized tree document.
package demo

import (
	"classtree.dev/classtree/internal/config"
	"classtree.dev/classtree/internal/output"
	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/tree"
)

func init() {
	// Register the demo context factory with the runtime package
	runtime.DemoContextFactory = func() *runtime.Context {
		return NewDemoContext()
	}
}

// Demo tree structure - an intake classification with a nested channel
// split so every renderer depth shows up
var demoTree = &tree.Node{
	ID:    0,
	Label: "Intake",
	Share: 100,
	Children: []*tree.Node{
		{
			ID:    1,
			Label: "Web",
			Share: 25,
			Children: []*tree.Node{
				{ID: 4, Label: "Organic", Share: 50},
				{
					ID:    5,
					Label: "Paid",
					Share: 50,
					Children: []*tree.Node{
						{ID: 6, Label: "Search Ads", Share: 60},
						{ID: 7, Label: "Social", Share: 40},
					},
				},
			},
		},
		{ID: 2, Label: "Phone", Share: 25},
		{ID: 3, Label: "Partner", Share: 50},
	},
}

// GetDemoTree returns the demo tree with quantities spread from the
// default global qty
func GetDemoTree() *tree.Node {
	return demoTree.DistributeQty(config.DefaultSettings().GlobalQty)
}

// GetDemoSettings returns the limits used by the demo workspace
func GetDemoSettings() *config.Settings {
	return config.DefaultSettings()
}

// NewDemoContext creates a read-only context backed by the demo tree
func NewDemoContext() *runtime.Context {
	return &runtime.Context{
		Tree:     GetDemoTree(),
		Settings: GetDemoSettings(),
		Console:  output.NewConsole(),
		ReadOnly: true,
	}
}
