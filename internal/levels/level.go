// Package levels provides the level catalog for the game: built-in levels
// embedded in the binary plus YAML level files loaded from a directory.
// This package depends on game but game does not depend on levels.
package levels

import (
	"fmt"

	"github.com/arcadelab/bleed/internal/game"
)

// Difficulty is a named level difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("levels: unknown difficulty %q", s)
	}
}

// knownColors is the set of palette color names the renderer understands.
var knownColors = map[string]bool{
	"red":     true,
	"green":   true,
	"blue":    true,
	"yellow":  true,
	"magenta": true,
	"cyan":    true,
	"orange":  true,
	"purple":  true,
}

// KnownColor reports whether name is a supported palette color.
func KnownColor(name string) bool {
	return knownColors[name]
}

// Level is an immutable level definition. The initial grid is implied:
// every cell starts uncolored.
type Level struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Difficulty Difficulty `yaml:"difficulty"`
	Palette    []string   `yaml:"palette"`
	MaxTaps    int        `yaml:"max_taps"`
	GridSize   int        `yaml:"grid_size"`
}

// Validate checks the level invariants.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("levels: level has empty id")
	}
	if l.Name == "" {
		return fmt.Errorf("levels: level %s has empty name", l.ID)
	}
	if _, err := ParseDifficulty(string(l.Difficulty)); err != nil {
		return fmt.Errorf("levels: level %s: %w", l.ID, err)
	}
	if len(l.Palette) < 2 || len(l.Palette) > 6 {
		return fmt.Errorf("levels: level %s has %d palette colors, want 2-6", l.ID, len(l.Palette))
	}
	seen := make(map[string]bool, len(l.Palette))
	for _, color := range l.Palette {
		if !KnownColor(color) {
			return fmt.Errorf("levels: level %s has unknown palette color %q", l.ID, color)
		}
		if seen[color] {
			return fmt.Errorf("levels: level %s repeats palette color %q", l.ID, color)
		}
		seen[color] = true
	}
	if l.MaxTaps <= 0 {
		return fmt.Errorf("levels: level %s has non-positive max taps %d", l.ID, l.MaxTaps)
	}
	if l.GridSize <= 0 {
		return fmt.Errorf("levels: level %s has non-positive grid size %d", l.ID, l.GridSize)
	}
	return nil
}

// SessionConfig converts the level into the engine's session configuration.
func (l Level) SessionConfig() game.Config {
	return game.Config{
		LevelID:     l.ID,
		LevelName:   l.Name,
		Difficulty:  string(l.Difficulty),
		PaletteSize: len(l.Palette),
		MaxTaps:     l.MaxTaps,
		GridSize:    l.GridSize,
	}
}

// NewSession creates a game session for this level.
func (l Level) NewSession(sink game.ScoreSink) (*game.Session, error) {
	return game.NewSession(l.SessionConfig(), sink)
}
