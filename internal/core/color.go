package core

// Color is a logical drawing color. Frontends map it to terminal styles
// or RGBA values.
type Color uint8

// Colors used by the game and its HUD.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// ParseColor maps a color name back to a Color. Unknown names yield ColorDefault.
func ParseColor(name string) Color {
	for c := ColorDefault; c <= ColorGray; c++ {
		if c.String() == name {
			return c
		}
	}
	return ColorDefault
}
