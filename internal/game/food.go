package game

import (
	"fmt"
	"math/rand"

	"github.com/ManuelC292/SnakeIA/internal/core"
)

// Food placement strategies accepted by NewSpawner.
const (
	PlacementUniform    = "uniform"
	PlacementAvoidSnake = "avoid_snake"
)

// Spawner picks the cell for the next food item.
type Spawner interface {
	Spawn(rng *rand.Rand, grid core.Grid, body *Body) core.Cell
}

// SpawnerFunc adapts a function to the Spawner interface.
type SpawnerFunc func(rng *rand.Rand, grid core.Grid, body *Body) core.Cell

// Spawn calls f.
func (f SpawnerFunc) Spawn(rng *rand.Rand, grid core.Grid, body *Body) core.Cell {
	return f(rng, grid, body)
}

// UniformSpawner picks any cell of the grid with equal probability.
// The snake body is not consulted, so food may land under the snake.
type UniformSpawner struct{}

// Spawn returns a uniformly random cell.
func (UniformSpawner) Spawn(rng *rand.Rand, grid core.Grid, _ *Body) core.Cell {
	x := rng.Intn(grid.Width)
	y := rng.Intn(grid.Height)
	return core.Cell{X: x, Y: y}
}

// AvoidSnakeSpawner samples uniformly but rejects cells under the snake.
// After MaxAttempts rejections it picks among the free cells directly; on a
// full board it gives up and returns a uniform cell.
type AvoidSnakeSpawner struct {
	MaxAttempts int
}

// Spawn returns a random cell not occupied by body.
func (s AvoidSnakeSpawner) Spawn(rng *rand.Rand, grid core.Grid, body *Body) core.Cell {
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = 32
	}
	for range attempts {
		c := UniformSpawner{}.Spawn(rng, grid, body)
		if !body.Contains(c) {
			return c
		}
	}

	var free []core.Cell
	for i := range grid.Area() {
		c := grid.CellAt(i)
		if !body.Contains(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return UniformSpawner{}.Spawn(rng, grid, body)
	}
	return free[rng.Intn(len(free))]
}

// NewSpawner returns the spawner for a placement name.
func NewSpawner(placement string) (Spawner, error) {
	switch placement {
	case "", PlacementUniform:
		return UniformSpawner{}, nil
	case PlacementAvoidSnake:
		return AvoidSnakeSpawner{}, nil
	default:
		return nil, fmt.Errorf("game: unknown food placement %q", placement)
	}
}
