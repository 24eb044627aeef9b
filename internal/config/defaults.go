package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the hardcoded blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			PeriodMS: 1000,
		},
		Palette: map[string]string{
			"I": "cyan",
			"J": "blue",
			"L": "orange",
			"O": "yellow",
			"S": "green",
			"T": "magenta",
			"Z": "red",
		},
		Difficulty: DifficultyFixed,
	}
}

// DefaultBlocksYAML returns the embedded default configuration file.
func DefaultBlocksYAML() []byte {
	return append([]byte(nil), defaultBlocksYAML...)
}
