// Package render draws a game snapshot into a character screen.
// It only reads the snapshot; all state lives in the session.
package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/ManuelC292/SnakeIA/internal/core"
	"github.com/ManuelC292/SnakeIA/internal/game"
)

// Options controls the board layout.
type Options struct {
	CellWidth int  // terminal columns per board cell
	Help      bool // reserve a line under the status bar for key help
}

// DefaultOptions returns the standard layout: two columns per cell.
func DefaultOptions() Options {
	return Options{CellWidth: core.DefaultCellWidth}
}

func (o Options) cellWidth() int {
	if o.CellWidth < 1 {
		return 1
	}
	return o.CellWidth
}

// Layout positions.
const (
	statusLines = 1
	helpLines   = 1
)

// Palette.
const (
	bgLight   = core.ColorGreen
	bgDark    = core.ColorDarkGreen
	bodyColor = core.ColorBlue
	headColor = core.ColorNavy
	tailColor = core.ColorLightBlue
	foodColor = core.ColorRed
	leafColor = core.ColorYellow
)

// RequiredSize returns the terminal size needed to show the whole board.
func RequiredSize(grid core.Grid, opts Options) (w, h int) {
	w = grid.Width * opts.cellWidth()
	h = grid.Height + statusLines
	if opts.Help {
		h += helpLines
	}
	return w, h
}

// Origin returns the screen position of board cell (0, 0) when the board is
// centered on dst.
func Origin(dst *core.Screen, grid core.Grid, opts Options) (x, y int) {
	w, h := RequiredSize(grid, opts)
	return max((dst.Width()-w)/2, 0), max((dst.Height()-h)/2, 0)
}

// Draw renders snap onto dst. The screen is cleared first.
func Draw(dst *core.Screen, snap game.Snapshot, opts Options) {
	dst.Clear()

	w, h := RequiredSize(snap.Grid, opts)
	if dst.Width() < w || dst.Height() < h {
		drawTooSmall(dst, w, h)
		return
	}

	ox, oy := Origin(dst, snap.Grid, opts)
	b := board{dst: dst, ox: ox, oy: oy, cw: opts.cellWidth(), grid: snap.Grid}

	b.checkerboard()

	n := len(snap.Snake)
	for i := 1; i < n-1; i++ {
		b.cell(snap.Snake[i], '●', bodyColor)
	}
	if n > 0 {
		b.cell(snap.Head(), HeadGlyph(snap.Dir), headColor)
	}
	if n > 1 {
		b.cell(snap.Tail(), TailGlyph(snap.Dir), tailColor)
	}
	b.food(snap.Food)

	drawStatus(dst, ox, oy+snap.Grid.Height, w, snap)

	if snap.GameOver {
		drawOverlay(dst, "Game Over", "Press Enter to Restart")
	}
}

// HeadGlyph returns the head symbol pointing in direction d.
func HeadGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '▲'
	case core.DirDown:
		return '▼'
	case core.DirLeft:
		return '◀'
	case core.DirRight:
		return '▶'
	}
	panic(fmt.Sprintf("render: unexpected direction %d", d))
}

// TailGlyph returns the tail symbol for a snake heading in direction d.
func TailGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '▿'
	case core.DirDown:
		return '▵'
	case core.DirLeft:
		return '▹'
	case core.DirRight:
		return '◃'
	}
	panic(fmt.Sprintf("render: unexpected direction %d", d))
}

type board struct {
	dst    *core.Screen
	ox, oy int
	cw     int
	grid   core.Grid
}

func (b board) checkerboard() {
	for y := range b.grid.Height {
		for x := range b.grid.Width {
			bg := bgDark
			if (x+y)%2 == 0 {
				bg = bgLight
			}
			for i := range b.cw {
				b.dst.SetGlyph(b.ox+x*b.cw+i, b.oy+y, core.Glyph{Rune: ' ', Bg: bg})
			}
		}
	}
}

// cell draws r in the first column of board cell c, keeping the background.
// Cells outside the grid are skipped.
func (b board) cell(c core.Cell, r rune, fg core.Color) {
	if !b.grid.Contains(c) {
		return
	}
	sx, sy := b.ox+c.X*b.cw, b.oy+c.Y
	g := b.dst.GetGlyph(sx, sy)
	b.dst.SetGlyph(sx, sy, core.Glyph{Rune: r, Fg: fg, Bg: g.Bg})
}

func (b board) food(c core.Cell) {
	if !b.grid.Contains(c) {
		return
	}
	b.cell(c, '●', foodColor)
	if b.cw > 1 {
		sx, sy := b.ox+c.X*b.cw+1, b.oy+c.Y
		g := b.dst.GetGlyph(sx, sy)
		b.dst.SetGlyph(sx, sy, core.Glyph{Rune: '❜', Fg: leafColor, Bg: g.Bg})
	}
}

// drawStatus writes the speed on the left and the score on the right.
func drawStatus(dst *core.Screen, x, y, width int, snap game.Snapshot) {
	dst.DrawTextStyled(x, y, fmt.Sprintf(" Speed: %d", snap.Speed), core.ColorWhite, core.ColorDefault)

	score := fmt.Sprintf("Score: %d ", snap.Score)
	dst.DrawTextStyled(x+width-runewidth.StringWidth(score), y, score, core.ColorWhite, core.ColorBlack)
}

func drawTooSmall(dst *core.Screen, w, h int) {
	drawCentered(dst, dst.Height()/2-1, "Window too small", core.ColorYellow, core.ColorDefault)
	drawCentered(dst, dst.Height()/2, fmt.Sprintf("need %dx%d", w, h), core.ColorGray, core.ColorDefault)
}

// drawOverlay draws a boxed two-line message in the middle of dst.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(runewidth.StringWidth(line1), runewidth.StringWidth(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			r := ' '
			switch {
			case isTopOrBottom && isLeftOrRight:
				r = '+'
			case isTopOrBottom:
				r = '-'
			case isLeftOrRight:
				r = '|'
			}
			dst.SetGlyph(x, y, core.Glyph{Rune: r, Fg: core.ColorRed, Bg: core.ColorBlack})
		}
	}

	drawCentered(dst, boxY+1, line1, core.ColorRed, core.ColorBlack)
	drawCentered(dst, boxY+3, line2, core.ColorWhite, core.ColorBlack)
}

// drawCentered writes text centered on row y, cut to the screen width.
func drawCentered(dst *core.Screen, y int, text string, fg, bg core.Color) {
	text = runewidth.Truncate(text, dst.Width(), "")
	x := max((dst.Width()-runewidth.StringWidth(text))/2, 0)
	dst.DrawTextStyled(x, y, text, fg, bg)
}
