package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/game"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Grid:       core.NewGrid(10, 6),
		Snake:      []core.Cell{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}},
		Food:       core.Cell{X: 8, Y: 1},
		Dir:        core.DirRight,
		Score:      7,
		IntervalMs: 200,
		Speed:      5,
		Running:    true,
		State:      game.StatePlaying,
	}
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(core.DefaultGrid(), DefaultOptions())
	if w != 40 || h != 21 {
		t.Errorf("RequiredSize() = %dx%d, expected 40x21", w, h)
	}

	w, h = RequiredSize(core.DefaultGrid(), Options{CellWidth: 0, Help: true})
	if w != 20 || h != 22 {
		t.Errorf("RequiredSize() with help = %dx%d, expected 20x22", w, h)
	}
}

func TestDrawBoard(t *testing.T) {
	snap := testSnapshot()
	opts := DefaultOptions()
	w, h := RequiredSize(snap.Grid, opts)
	dst := core.NewScreen(w, h)

	Draw(dst, snap, opts)

	// Board starts at the origin when the screen fits exactly
	if g := dst.GetGlyph(5*2, 3); g.Rune != '▶' || g.Fg != headColor {
		t.Errorf("head glyph = %+v, expected ▶ in head color", g)
	}
	if g := dst.GetGlyph(4*2, 3); g.Rune != '●' || g.Fg != bodyColor {
		t.Errorf("body glyph = %+v", g)
	}
	if g := dst.GetGlyph(3*2, 2); g.Rune != '◃' || g.Fg != tailColor {
		t.Errorf("tail glyph = %+v", g)
	}
	if g := dst.GetGlyph(8*2, 1); g.Rune != '●' || g.Fg != foodColor {
		t.Errorf("food glyph = %+v", g)
	}

	// Checkerboard
	if dst.GetGlyph(0, 0).Bg != bgLight || dst.GetGlyph(2, 0).Bg != bgDark || dst.GetGlyph(2, 1).Bg != bgLight {
		t.Error("background should alternate per cell")
	}

	status := dst.Row(snap.Grid.Height)
	if !strings.Contains(status, "Speed: 5") || !strings.Contains(status, "Score: 7") {
		t.Errorf("status row = %q", status)
	}
}

func TestDrawSkipsCellsOutsideGrid(t *testing.T) {
	snap := testSnapshot()
	// Head just crashed through the right wall
	snap.Snake[0] = core.Cell{X: 10, Y: 3}
	snap.GameOver = true
	snap.Running = false

	opts := DefaultOptions()
	w, h := RequiredSize(snap.Grid, opts)
	dst := core.NewScreen(w+10, h)

	Draw(dst, snap, opts)

	if !strings.Contains(dst.String(), "Game Over") {
		t.Error("game over overlay missing")
	}
	if strings.ContainsRune(dst.String(), '▶') {
		t.Error("head outside the grid should not be drawn")
	}
}

func TestDrawTooSmall(t *testing.T) {
	dst := core.NewScreen(18, 5)
	Draw(dst, testSnapshot(), DefaultOptions())

	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected too-small message, got %q", dst.String())
	}
	if !strings.Contains(dst.String(), "need 20x7") {
		t.Errorf("expected required size, got %q", dst.String())
	}
}

func TestDrawTooSmallTruncatesFromTheRight(t *testing.T) {
	dst := core.NewScreen(10, 5)
	Draw(dst, testSnapshot(), DefaultOptions())

	if row := dst.Row(1); row != "Window too" {
		t.Errorf("row 1 = %q, expected the start of the message", row)
	}
	if row := dst.Row(2); row != "need 20x7 " {
		t.Errorf("row 2 = %q", row)
	}
}

func TestHeadAndTailGlyphsDifferPerDirection(t *testing.T) {
	heads := make(map[rune]bool)
	tails := make(map[rune]bool)
	for _, d := range core.Directions {
		heads[HeadGlyph(d)] = true
		tails[TailGlyph(d)] = true
	}
	if len(heads) != 4 || len(tails) != 4 {
		t.Errorf("expected four distinct head and tail glyphs, got %d and %d", len(heads), len(tails))
	}
}

func TestUnknownDirectionPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("HeadGlyph should panic on an unknown direction")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "unexpected direction") {
			t.Errorf("panic value = %v", r)
		}
	}()
	HeadGlyph(core.Direction(9))
}

func TestDrawSessionSnapshot(t *testing.T) {
	corner := game.SpawnerFunc(func(*rand.Rand, core.Grid, *game.Body) core.Cell { return core.Cell{} })
	s := game.NewSession(game.DefaultSettings(), game.WithSpawner(corner))
	opts := DefaultOptions()
	w, h := RequiredSize(s.Settings().Grid, opts)
	dst := core.NewScreen(w, h)

	Draw(dst, s.Snapshot(), opts)

	// Start position: head at (10, 10) facing right
	if dst.Get(10*2, 10) != '▶' {
		t.Errorf("expected head at (20, 10), row = %q", dst.Row(10))
	}
}
