package config

import (
	_ "embed"

	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/game"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:     core.DefaultGridWidth,
			Height:    core.DefaultGridHeight,
			CellWidth: core.DefaultCellWidth,
		},
		Speed: SpeedConfig{
			InitialMs:  game.InitialIntervalMs,
			Multiplier: game.SpeedMultiplier,
		},
		Snake: SnakeConfig{
			StartLength: game.StartLength,
		},
		Food: FoodConfig{
			Placement: game.PlacementUniform,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
