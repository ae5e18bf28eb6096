package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	Players   int // Requested player count, 0 means the variant's default
	BoardSize int // Side length of every board, 0 means the game's default
	Theme     Theme
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int    // Accepted moves so far
	GameOver bool   // Whether the game has ended
	Turn     string // Name of the player to move, empty once over
	Status   string // One-line outcome of the last action
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State    GameState
	Accepted bool // The frame changed the match (move, resignation or restart)
}

// Theme carries per-seat symbols and colours from the configuration.
// Index i styles the i-th seat of a full roster; missing entries fall back
// to the game's built-in look.
type Theme struct {
	Symbols   []rune
	Colors    []Color
	Highlight Color // Colour of the active board frame
}

// Symbol returns the configured symbol for seat i, or fallback.
func (t Theme) Symbol(i int, fallback rune) rune {
	if i < 0 || i >= len(t.Symbols) || t.Symbols[i] == 0 {
		return fallback
	}
	return t.Symbols[i]
}

// Color returns the configured colour for seat i, or fallback.
func (t Theme) Color(i int, fallback Color) Color {
	if i < 0 || i >= len(t.Colors) {
		return fallback
	}
	return t.Colors[i]
}
