package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ManuelC292/SnakeIA/internal/core"
)

var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:     lipgloss.Color("0"),
	core.ColorWhite:     lipgloss.Color("15"),
	core.ColorRed:       lipgloss.Color("9"),
	core.ColorGreen:     lipgloss.Color("34"),
	core.ColorDarkGreen: lipgloss.Color("28"),
	core.ColorBlue:      lipgloss.Color("12"),
	core.ColorNavy:      lipgloss.Color("18"),
	core.ColorLightBlue: lipgloss.Color("117"),
	core.ColorYellow:    lipgloss.Color("11"),
	core.ColorGray:      lipgloss.Color("245"),
}

type colorPair struct{ fg, bg core.Color }

var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	p := colorPair{fg, bg}
	if st, ok := styleCache[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		st = st.Background(c)
	}
	styleCache[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			g := s.GetGlyph(x, y)
			fg, bg := g.Fg, g.Bg

			var run strings.Builder
			for x < s.Width() {
				g = s.GetGlyph(x, y)
				if g.Fg != fg || g.Bg != bg {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}
			sb.WriteString(styleFor(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
