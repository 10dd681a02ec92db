package game

import (
	"math/rand"
	"testing"

	"github.com/ManuelC292/SnakeIA/internal/core"
)

func TestUniformSpawnerStaysInGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := core.NewGrid(5, 3)
	body := StartingBody(grid, 2)

	seen := make(map[core.Cell]bool)
	for range 2000 {
		c := UniformSpawner{}.Spawn(rng, grid, body)
		if !grid.Contains(c) {
			t.Fatalf("spawned outside the grid: %v", c)
		}
		seen[c] = true
	}

	// Uniform over the whole grid, snake cells included
	if len(seen) != grid.Area() {
		t.Errorf("expected every cell to be reachable, saw %d of %d", len(seen), grid.Area())
	}
}

func TestAvoidSnakeSpawner(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	grid := core.NewGrid(3, 3)
	// Fill every cell but (2, 2)
	var cells []core.Cell
	for i := range grid.Area() - 1 {
		cells = append(cells, grid.CellAt(i))
	}
	body := NewBody(cells...)

	for range 50 {
		c := AvoidSnakeSpawner{MaxAttempts: 2}.Spawn(rng, grid, body)
		if c != (core.Cell{X: 2, Y: 2}) {
			t.Fatalf("expected the only free cell, got %v", c)
		}
	}
}

func TestAvoidSnakeSpawnerFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid := core.NewGrid(2, 1)
	body := NewBody(core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0})

	c := AvoidSnakeSpawner{}.Spawn(rng, grid, body)
	if !grid.Contains(c) {
		t.Errorf("full board should still yield an in-grid cell, got %v", c)
	}
}

func TestNewSpawner(t *testing.T) {
	if _, err := NewSpawner(PlacementUniform); err != nil {
		t.Errorf("uniform: %v", err)
	}
	if sp, err := NewSpawner(""); err != nil {
		t.Errorf("empty placement: %v", err)
	} else if _, ok := sp.(UniformSpawner); !ok {
		t.Errorf("empty placement should default to uniform, got %T", sp)
	}
	if _, err := NewSpawner(PlacementAvoidSnake); err != nil {
		t.Errorf("avoid_snake: %v", err)
	}
	if _, err := NewSpawner("nearest"); err == nil {
		t.Error("unknown placement should fail")
	}
}
