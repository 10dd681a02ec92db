package core

import "fmt"

// Direction is the heading of the snake. The set of values is closed:
// every switch over Direction in this module handles all four.
type Direction uint8

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every valid direction.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d <= DirUp
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	panic(fmt.Sprintf("core: unexpected direction %d", d))
}

// Delta returns the column/row offset of one move in direction d.
// Rows grow downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	panic(fmt.Sprintf("core: unexpected direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}
