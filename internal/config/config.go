// Package config provides YAML-based configuration for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/game"
)

// Config contains every tunable of a game session and its board layout.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
	Snake SnakeConfig `yaml:"snake"`
	Food  FoodConfig  `yaml:"food"`
}

// GridConfig defines the board size.
type GridConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	CellWidth int `yaml:"cell_width"` // terminal columns per cell
}

// SpeedConfig defines the tick interval and how it shrinks.
type SpeedConfig struct {
	InitialMs     float64 `yaml:"initial_ms"`
	Multiplier    float64 `yaml:"multiplier"`
	MinIntervalMs float64 `yaml:"min_interval_ms"` // 0 = no floor
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	StartLength int `yaml:"start_length"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Placement string `yaml:"placement"` // "uniform" or "avoid_snake"
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_width must be positive, got %d", c.Grid.CellWidth))
	}
	if c.Speed.InitialMs <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial_ms must be positive, got %v", c.Speed.InitialMs))
	}
	if c.Speed.Multiplier <= 0 || c.Speed.Multiplier > 1 {
		errs = append(errs, fmt.Errorf("speed.multiplier must be in (0, 1], got %v", c.Speed.Multiplier))
	}
	if c.Speed.MinIntervalMs < 0 {
		errs = append(errs, fmt.Errorf("speed.min_interval_ms must not be negative, got %v", c.Speed.MinIntervalMs))
	}
	if c.Snake.StartLength < game.StartLength {
		errs = append(errs, fmt.Errorf("snake.start_length must be at least %d, got %d", game.StartLength, c.Snake.StartLength))
	} else if c.Grid.Height > 0 && c.Snake.StartLength > c.Grid.Height/2+1 {
		errs = append(errs, fmt.Errorf("snake.start_length %d does not fit above the center of a %d-row grid", c.Snake.StartLength, c.Grid.Height))
	}
	if _, err := game.NewSpawner(c.Food.Placement); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Settings converts the configuration to session settings.
func (c Config) Settings() game.Settings {
	return game.Settings{
		Grid:            core.NewGrid(c.Grid.Width, c.Grid.Height),
		InitialInterval: c.Speed.InitialMs,
		SpeedMultiplier: c.Speed.Multiplier,
		MinInterval:     c.Speed.MinIntervalMs,
		StartLength:     c.Snake.StartLength,
	}
}

// Spawner returns the food placement strategy.
func (c Config) Spawner() (game.Spawner, error) {
	return game.NewSpawner(c.Food.Placement)
}
