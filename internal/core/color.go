package core

// Color identifies a palette entry. Each frontend maps it to its own
// representation (ANSI styles in the terminal, RGBA in the window).
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorGray
)

// String returns the palette name, used in test output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
