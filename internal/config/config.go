// Package config provides YAML-based configuration loading, environment
// overrides and player-count presets for Mind-Bender.
package config

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/mindbender/internal/core"
)

// Board size limits accepted from configuration.
const (
	MinBoardSize = 3
	MaxBoardSize = 5
)

// Config is the complete user configuration.
type Config struct {
	Players   int    `yaml:"players" env:"MINDBENDER_PLAYERS"`
	BoardSize int    `yaml:"board_size" env:"MINDBENDER_BOARD_SIZE"`
	LogLevel  string `yaml:"log_level" env:"MINDBENDER_LOG_LEVEL"`
	Theme     Theme  `yaml:"theme"`

	// Source names where the configuration was read from.
	Source string `yaml:"-"`
}

// Theme defines how players and the active board are drawn.
type Theme struct {
	Highlight string        `yaml:"highlight"`
	Players   []PlayerStyle `yaml:"players"`
}

// PlayerStyle is the look of one seat, in seating order.
type PlayerStyle struct {
	Symbol string `yaml:"symbol"`
	Color  string `yaml:"color"`
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Normalize clamps out-of-range values and replaces unknown ones with
// defaults. Invalid settings are never an error.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.Players == 0 {
		c.Players = def.Players
	}
	c.Players = core.Clamp(c.Players, 2, 4)

	if c.BoardSize == 0 {
		c.BoardSize = def.BoardSize
	}
	c.BoardSize = core.Clamp(c.BoardSize, MinBoardSize, MaxBoardSize)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if !logLevels[c.LogLevel] {
		c.LogLevel = def.LogLevel
	}

	if _, ok := core.ParseColor(c.Theme.Highlight); !ok {
		c.Theme.Highlight = def.Theme.Highlight
	}

	styles := make([]PlayerStyle, len(def.Theme.Players))
	for i, fallback := range def.Theme.Players {
		s := fallback
		if i < len(c.Theme.Players) {
			s = c.Theme.Players[i]
		}
		if utf8.RuneCountInString(s.Symbol) != 1 {
			s.Symbol = fallback.Symbol
		}
		if _, ok := core.ParseColor(s.Color); !ok {
			s.Color = fallback.Color
		}
		styles[i] = s
	}
	c.Theme.Players = styles
}

// Update is called by cleanenv after environment variables are applied.
func (c *Config) Update() error {
	c.Normalize()
	return nil
}

// RuntimeTheme converts the theme into the platform representation.
// Call Normalize first so every entry is valid.
func (c Config) RuntimeTheme() core.Theme {
	th := core.Theme{
		Symbols: make([]rune, len(c.Theme.Players)),
		Colors:  make([]core.Color, len(c.Theme.Players)),
	}
	th.Highlight, _ = core.ParseColor(c.Theme.Highlight)
	for i, s := range c.Theme.Players {
		th.Symbols[i], _ = utf8.DecodeRuneInString(s.Symbol)
		th.Colors[i], _ = core.ParseColor(s.Color)
	}
	return th
}

// Runtime builds the configuration passed to a game's Reset.
// Players is left at zero so the chosen variant decides the seat count.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   screenW,
		ScreenH:   screenH,
		BoardSize: c.BoardSize,
		Theme:     c.RuntimeTheme(),
	}
}
