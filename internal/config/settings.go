// Package config provides the classtree settings file,
// including reading and writing the YAML settings document.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"classtree.dev/classtree/internal/tree"
)

// Settings holds the tunable limits of a classification workspace.
type Settings struct {
	// GlobalQty is the total volume distributed over the tree.
	GlobalQty int `yaml:"global_qty"`

	// MinNodeQty is the threshold normalization lifts every node above.
	MinNodeQty int `yaml:"min_node_qty"`

	// MaxChildren caps how many children a node may receive.
	MaxChildren int `yaml:"max_children"`

	// MaxGlobalQty is the ceiling callers should respect when growing
	// the total volume.
	MaxGlobalQty int `yaml:"max_global_qty"`

	// MaxLevels caps the tree depth, counted from the root at 0.
	MaxLevels int `yaml:"max_levels"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	lim := tree.DefaultLimits()
	return &Settings{
		GlobalQty:    lim.GlobalQty,
		MinNodeQty:   lim.MinNodeQty,
		MaxChildren:  lim.MaxChildren,
		MaxGlobalQty: lim.MaxGlobalQty,
		MaxLevels:    lim.MaxLevels,
	}
}

// Load reads settings from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return s, nil
}

// Save writes the settings to path, creating parent directories as
// needed.
func Save(path string, s *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Validate checks the settings for values the engine cannot work with.
func (s *Settings) Validate() error {
	if s.GlobalQty <= 0 {
		return fmt.Errorf("global_qty must be positive, got %d", s.GlobalQty)
	}
	if s.MinNodeQty < 0 {
		return fmt.Errorf("min_node_qty must not be negative, got %d", s.MinNodeQty)
	}
	if s.MaxChildren <= 0 {
		return fmt.Errorf("max_children must be positive, got %d", s.MaxChildren)
	}
	if s.MaxLevels <= 0 {
		return fmt.Errorf("max_levels must be positive, got %d", s.MaxLevels)
	}
	if s.MaxGlobalQty < s.GlobalQty {
		return fmt.Errorf("max_global_qty %d is below global_qty %d", s.MaxGlobalQty, s.GlobalQty)
	}
	return nil
}

// Limits converts the settings into the engine's configuration bundle.
func (s *Settings) Limits() tree.Limits {
	return tree.Limits{
		GlobalQty:    s.GlobalQty,
		MinNodeQty:   s.MinNodeQty,
		MaxChildren:  s.MaxChildren,
		MaxGlobalQty: s.MaxGlobalQty,
		MaxLevels:    s.MaxLevels,
	}
}
