package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
	ColorBrown
	ColorAquamarine
	ColorTurquoise
	ColorGold
	ColorLightGray
	ColorBlack
)

// rainbow is the hue sequence used for gradient text, red through violet
// and back to red, matching seven evenly spaced HSL stops.
var rainbow = []Color{
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightRed,
}

// GradientAt returns the rainbow color for position i of n characters.
func GradientAt(i, n int) Color {
	if n <= 1 {
		return rainbow[0]
	}
	idx := i * (len(rainbow) - 1) / (n - 1)
	return rainbow[Clamp(idx, 0, len(rainbow)-1)]
}
