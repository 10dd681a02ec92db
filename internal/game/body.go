package game

import "github.com/ManuelC292/SnakeIA/internal/core"

// Body is the ordered list of cells occupied by the snake.
// Index 0 is the head, the last index is the tail.
type Body struct {
	cells []core.Cell
}

// NewBody creates a body from cells listed head first.
func NewBody(cells ...core.Cell) *Body {
	b := &Body{cells: make([]core.Cell, len(cells))}
	copy(b.cells, cells)
	return b
}

// StartingBody builds the initial snake: head at the grid center with the
// rest of the body stacked above it.
func StartingBody(grid core.Grid, length int) *Body {
	head := grid.Center()
	cells := make([]core.Cell, length)
	for i := range cells {
		cells[i] = head.Add(0, -i)
	}
	return &Body{cells: cells}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Head returns the first segment.
func (b *Body) Head() core.Cell {
	return b.cells[0]
}

// Tail returns the last segment.
func (b *Body) Tail() core.Cell {
	return b.cells[len(b.cells)-1]
}

// At returns segment i, counting from the head.
func (b *Body) At(i int) core.Cell {
	return b.cells[i]
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Contains reports whether any segment occupies c.
func (b *Body) Contains(c core.Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// ShiftForward advances the snake one cell. Every segment behind the head
// first takes its predecessor's position, then the head steps in direction d.
// The old tail position is dropped.
func (b *Body) ShiftForward(d core.Direction) {
	for i := len(b.cells) - 1; i > 0; i-- {
		b.cells[i] = b.cells[i-1]
	}
	b.cells[0] = b.cells[0].Step(d)
}

// Grow appends one segment at the tail. The new segment sits on the current
// tail until the next ShiftForward moves it into place, so the snake is one
// cell longer starting with the next tick.
func (b *Body) Grow() {
	b.cells = append(b.cells, b.Tail())
}
