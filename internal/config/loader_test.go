package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mindbender/internal/core"
)

// isolate points the XDG directories and the working directory at empty
// temporary directories so no real user config leaks into a test.
func isolate(t *testing.T) (xdgHome string) {
	t.Helper()
	t.Cleanup(xdg.Reload)

	xdgHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	for _, env := range []string{"MINDBENDER_PLAYERS", "MINDBENDER_BOARD_SIZE", "MINDBENDER_LOG_LEVEL"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	xdg.Reload()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return xdgHome
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	want := DefaultConfig()
	assert.Equal(t, want.Players, cfg.Players)
	assert.Equal(t, want.BoardSize, cfg.BoardSize)
	assert.Equal(t, want.LogLevel, cfg.LogLevel)
	assert.Equal(t, want.Theme, cfg.Theme)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "embedded", cfg.Source)
	assert.Equal(t, 2, cfg.Players)
	assert.Equal(t, 3, cfg.BoardSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Len(t, cfg.Theme.Players, 4)
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
players: 3
board_size: 4
theme:
  players:
    - symbol: "X"
      color: magenta
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 3, cfg.Players)
	assert.Equal(t, 4, cfg.BoardSize)
	assert.Equal(t, "info", cfg.LogLevel, "unset fields keep their defaults")
	require.Len(t, cfg.Theme.Players, 4)
	assert.Equal(t, PlayerStyle{Symbol: "X", Color: "magenta"}, cfg.Theme.Players[0])
	assert.Equal(t, PlayerStyle{Symbol: "I", Color: "blue"}, cfg.Theme.Players[1])
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "players: [not, a, number")
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, LocalConfigFile, "players: 3\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LocalConfigFile, cfg.Source)
	assert.Equal(t, 3, cfg.Players)

	// The XDG file wins over the local one
	userPath := filepath.Join(home, UserConfigFile)
	writeFile(t, userPath, "players: 4\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, userPath, cfg.Source)
	assert.Equal(t, 4, cfg.Players)
}

func TestLoadSkipsBrokenOptionalFiles(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, UserConfigFile), "{{{")
	writeFile(t, LocalConfigFile, "board_size: 5\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LocalConfigFile, cfg.Source)
	assert.Equal(t, 5, cfg.BoardSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	writeFile(t, LocalConfigFile, "players: 2\nlog_level: warn\n")

	t.Setenv("MINDBENDER_PLAYERS", "4")
	t.Setenv("MINDBENDER_BOARD_SIZE", "9")
	t.Setenv("MINDBENDER_LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, MaxBoardSize, cfg.BoardSize, "env values are clamped too")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvInvalidNumber(t *testing.T) {
	isolate(t)
	t.Setenv("MINDBENDER_PLAYERS", "many")

	_, err := Load("")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Config
		players   int
		boardSize int
		logLevel  string
	}{
		{"zero values", Config{}, 2, 3, "info"},
		{"too few players", Config{Players: 1, BoardSize: 3, LogLevel: "info"}, 2, 3, "info"},
		{"too many players", Config{Players: 9, BoardSize: 3, LogLevel: "info"}, 4, 3, "info"},
		{"small board", Config{Players: 3, BoardSize: 2, LogLevel: "warn"}, 3, 3, "warn"},
		{"large board", Config{Players: 3, BoardSize: 12, LogLevel: "error"}, 3, 5, "error"},
		{"unknown level", Config{Players: 4, BoardSize: 4, LogLevel: "loud"}, 4, 4, "info"},
		{"level case", Config{Players: 2, BoardSize: 3, LogLevel: " Debug "}, 2, 3, "debug"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.in
			cfg.Normalize()

			assert.Equal(t, tc.players, cfg.Players)
			assert.Equal(t, tc.boardSize, cfg.BoardSize)
			assert.Equal(t, tc.logLevel, cfg.LogLevel)
			assert.Len(t, cfg.Theme.Players, 4)
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	cfg := Config{
		Theme: Theme{
			Highlight: "ultraviolet",
			Players: []PlayerStyle{
				{Symbol: "XY", Color: "red"},
				{Symbol: "o", Color: "nope"},
			},
		},
	}
	cfg.Normalize()

	assert.Equal(t, "bright_cyan", cfg.Theme.Highlight)
	assert.Equal(t, PlayerStyle{Symbol: "Σ", Color: "red"}, cfg.Theme.Players[0])
	assert.Equal(t, PlayerStyle{Symbol: "o", Color: "blue"}, cfg.Theme.Players[1])
	assert.Equal(t, PlayerStyle{Symbol: "β", Color: "yellow"}, cfg.Theme.Players[3])
}

func TestRuntimeTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalize()

	rc := cfg.Runtime(100, 40)
	assert.Equal(t, 100, rc.ScreenW)
	assert.Equal(t, 40, rc.ScreenH)
	assert.Zero(t, rc.Players)
	assert.Equal(t, 3, rc.BoardSize)

	th := rc.Theme
	assert.Equal(t, []rune{'Σ', 'I', 'α', 'β'}, th.Symbols)
	assert.Equal(t, []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen, core.ColorYellow}, th.Colors)
	assert.Equal(t, core.ColorBrightCyan, th.Highlight)
}

func TestWriteDefault(t *testing.T) {
	home := isolate(t)

	path, err := WriteDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, UserConfigFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultYAML(), data)

	_, err = WriteDefault()
	assert.Error(t, err, "an existing config must not be overwritten")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
}

func TestPresets(t *testing.T) {
	for i, p := range Presets() {
		n, ok := PlayersForPreset(p)
		require.True(t, ok)
		assert.Equal(t, i+2, n)
	}

	p, err := ParsePreset(" TRIO ")
	require.NoError(t, err)
	assert.Equal(t, PresetTrio, p)

	_, err = ParsePreset("solo")
	assert.Error(t, err)

	cfg := DefaultConfig()
	require.NoError(t, ApplyPreset(&cfg, PresetQuad))
	assert.Equal(t, 4, cfg.Players)
	assert.Error(t, ApplyPreset(&cfg, Preset("solo")))
}
