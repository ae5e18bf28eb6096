package config

import (
	"fmt"
	"strings"
)

// Preset is a named seat count.
type Preset string

const (
	PresetDuel Preset = "duel"
	PresetTrio Preset = "trio"
	PresetQuad Preset = "quad"
)

// Presets lists the presets in player-count order.
func Presets() []Preset {
	return []Preset{PresetDuel, PresetTrio, PresetQuad}
}

// PlayersForPreset returns the player count of a preset.
func PlayersForPreset(p Preset) (int, bool) {
	switch p {
	case PresetDuel:
		return 2, true
	case PresetTrio:
		return 3, true
	case PresetQuad:
		return 4, true
	default:
		return 0, false
	}
}

// ParsePreset accepts a preset name in any case.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := PlayersForPreset(p); !ok {
		return "", fmt.Errorf("unknown preset %q (want duel, trio or quad)", name)
	}
	return p, nil
}

// ApplyPreset sets the player count from a preset.
func ApplyPreset(cfg *Config, p Preset) error {
	n, ok := PlayersForPreset(p)
	if !ok {
		return fmt.Errorf("unknown preset %q", p)
	}
	cfg.Players = n
	return nil
}
