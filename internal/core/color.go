package core

// Color is the foreground color of a screen cell.
// The platform layer decides how each value is displayed.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightWhite
)
