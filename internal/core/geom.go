// Package core provides the grid geometry, input actions and the character
// screen buffer shared by the game logic and the terminal platform.
// It has no external dependencies so game logic stays pure and testable.
package core

// Cell is a position on the board, in columns (X) and rows (Y).
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring cell one move away in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Grid describes the board dimensions in cells.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Contains reports whether c lies inside [0, Width) x [0, Height).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the middle cell of the grid (rounded down).
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// CellAt converts a linear index in row-major order to a cell.
func (g Grid) CellAt(i int) Cell {
	return Cell{X: i % g.Width, Y: i / g.Width}
}

// Board defaults. The board is square, 20 cells per side, and each cell is
// drawn two terminal columns wide so it renders roughly square.
const (
	DefaultGridWidth  = 20
	DefaultGridHeight = 20
	DefaultCellWidth  = 2
)

// DefaultGrid returns the standard 20x20 board.
func DefaultGrid() Grid {
	return NewGrid(DefaultGridWidth, DefaultGridHeight)
}
