package main

import (
	"fmt"

	"github.com/vovakirdan/tui-sand/internal/config"
	"github.com/vovakirdan/tui-sand/internal/registry"
)

// applyFlags overrides cfg with the command line and validates the result.
// Zero size keeps the configured grid size.
func applyFlags(cfg config.Config, scene string, size, scale int) (config.Config, error) {
	if scale <= 0 {
		return cfg, fmt.Errorf("--scale must be positive, got %d", scale)
	}
	if scene != "" {
		if !registry.Exists(scene) {
			return cfg, fmt.Errorf("unknown scene %q", scene)
		}
		cfg.Grid.Scene = scene
	}
	if size != 0 {
		cfg.Grid.Size = size
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
