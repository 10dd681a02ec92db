package core

// Color is a terminal palette entry for a screen cell's foreground or background.
type Color uint8

// Palette used by the snake board.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorBlue
	ColorNavy
	ColorLightBlue
	ColorYellow
	ColorGray
)
