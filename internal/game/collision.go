package game

import "github.com/ManuelC292/SnakeIA/internal/core"

// IsColliding reports whether the head has left the grid or overlaps any
// other segment of the body.
func IsColliding(b *Body, grid core.Grid) bool {
	head := b.Head()
	if !grid.Contains(head) {
		return true
	}
	for i := 1; i < b.Len(); i++ {
		if b.At(i) == head {
			return true
		}
	}
	return false
}

// IsEatingFood reports whether the head is on the food cell.
func IsEatingFood(b *Body, food core.Cell) bool {
	return b.Head() == food
}
