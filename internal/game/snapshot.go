package game

import "github.com/ManuelC292/SnakeIA/internal/core"

// Snapshot is a read-only copy of a Session for renderers and replay tooling.
// Snake is a private copy; changing it does not affect the session.
type Snapshot struct {
	Grid       core.Grid
	Snake      []core.Cell // head first
	Food       core.Cell
	Dir        core.Direction
	Score      int
	IntervalMs float64
	Speed      int
	Running    bool
	GameOver   bool
	State      State
	Tick       uint64
	Clock      uint64
	FoodSpawns int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:       s.settings.Grid,
		Snake:      s.body.Cells(),
		Food:       s.food,
		Dir:        s.direction,
		Score:      s.score,
		IntervalMs: s.interval,
		Speed:      speedOf(s.interval),
		Running:    s.running,
		GameOver:   s.gameOver,
		State:      s.State(),
		Tick:       s.ticks,
		Clock:      s.clock,
		FoodSpawns: s.spawns,
	}
}

// Head returns the snake's head cell.
func (snap Snapshot) Head() core.Cell {
	return snap.Snake[0]
}

// Tail returns the snake's last cell.
func (snap Snapshot) Tail() core.Cell {
	return snap.Snake[len(snap.Snake)-1]
}

// Len returns the snake's length.
func (snap Snapshot) Len() int {
	return len(snap.Snake)
}
