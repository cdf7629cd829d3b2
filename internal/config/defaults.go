package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sand.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/sand.yaml and is used when that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size:  40,
			Scene: "empty",
		},
		Sim: SimConfig{
			TickRate: 30,
			Sweep:    "columns",
			OnFault:  FaultLog,
		},
		Brush: BrushConfig{
			Radius:    2.5,
			MinRadius: 0.5,
			MaxRadius: 12,
			Density:   100,
			Materials: map[string]BrushOverride{
				"solid": {Radius: 1},
				"sand":  {Radius: 3},
				"water": {Radius: 3},
			},
		},
		Palette: map[string]PaletteEntry{
			"air":   {Glyph: " ", Color: "default"},
			"solid": {Glyph: "#", Color: "gray"},
			"sand":  {Glyph: "s", Color: "yellow"},
			"water": {Glyph: "~", Color: "bright_blue"},
		},
		Storage: StorageConfig{
			DBPath: "~/.sand/runs.db",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			HostKey:     "~/.sand/ssh_host_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
