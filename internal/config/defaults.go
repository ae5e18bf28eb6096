package config

import (
	_ "embed"
)

//go:embed defaults/mindbender.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the hard-coded default configuration.
// It matches defaults/mindbender.yaml and is used if the embed cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Players:   2,
		BoardSize: 3,
		LogLevel:  "info",
		Theme: Theme{
			Highlight: "bright_cyan",
			Players: []PlayerStyle{
				{Symbol: "Σ", Color: "red"},
				{Symbol: "I", Color: "blue"},
				{Symbol: "α", Color: "green"},
				{Symbol: "β", Color: "yellow"},
			},
		},
		Source: "builtin",
	}
}
