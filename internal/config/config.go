// Package config provides YAML-based configuration loading and difficulty
// presets for the blocks game.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// Minimum playfield dimensions. Every piece must fit at spawn.
const (
	MinBoardWidth  = 4
	MinBoardHeight = 4
)

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Board      BoardConfig       `yaml:"board"`
	Gravity    GravityConfig     `yaml:"gravity"`
	Palette    map[string]string `yaml:"palette"`
	Difficulty DifficultyPreset  `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines how often the active piece falls one row.
type GravityConfig struct {
	PeriodMS int `yaml:"period_ms"`
}

// Period returns the gravity interval as a duration.
func (g GravityConfig) Period() time.Duration {
	return time.Duration(g.PeriodMS) * time.Millisecond
}

// Validate checks that the configuration can start a game.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Board.Width < MinBoardWidth {
		errs = append(errs, fmt.Errorf("board.width must be at least %d, got %d", MinBoardWidth, c.Board.Width))
	}
	if c.Board.Height < MinBoardHeight {
		errs = append(errs, fmt.Errorf("board.height must be at least %d, got %d", MinBoardHeight, c.Board.Height))
	}
	if c.Gravity.PeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.period_ms must be positive, got %d", c.Gravity.PeriodMS))
	}
	if _, err := c.PiecePalette(); err != nil {
		errs = append(errs, err)
	}
	if c.Difficulty != "" && !IsValidPreset(c.Difficulty) {
		errs = append(errs, fmt.Errorf("unknown difficulty %q", c.Difficulty))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// PiecePalette resolves the palette section against the default colors.
// Kinds missing from the config keep their default color.
func (c BlocksConfig) PiecePalette() (blocks.Palette, error) {
	p := blocks.DefaultPalette()

	keys := make([]string, 0, len(c.Palette))
	for k := range c.Palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		kind, ok := blocks.ParseKind(name)
		if !ok {
			return p, fmt.Errorf("palette: unknown piece %q", name)
		}
		color, ok := core.ParseColor(c.Palette[name])
		if !ok {
			return p, fmt.Errorf("palette: unknown color %q for %s", c.Palette[name], name)
		}
		p[kind] = color
	}
	return p, nil
}
