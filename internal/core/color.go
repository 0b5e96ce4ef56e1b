package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the runner. The widget is monochrome except for hazards.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightRed
	ColorGray
	ColorYellow
	ColorGreen
)
