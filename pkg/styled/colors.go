package styled

import "strconv"

// Color is a terminal-independent named color. The zero value means "use the
// renderer's default color".
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorLightGray
	ColorGray
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorWhite
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorBlack:        "black",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorLightGray:    "lightgray",
	ColorGray:         "gray",
	ColorLightRed:     "lightred",
	ColorLightGreen:   "lightgreen",
	ColorLightYellow:  "lightyellow",
	ColorLightBlue:    "lightblue",
	ColorLightMagenta: "lightmagenta",
	ColorLightCyan:    "lightcyan",
	ColorWhite:        "white",
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "default"
	}
	return colorNames[c]
}

// ParseColor parses a color name as accepted by String. It returns ok = false
// for unknown names.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return Color(c), true
		}
	}
	return ColorDefault, false
}

// fgSGR returns the SGR parameter that selects c as the foreground color, or
// "" for the default color.
func (c Color) fgSGR() string { return c.sgr(30, 90) }

// bgSGR returns the SGR parameter that selects c as the background color, or
// "" for the default color.
func (c Color) bgSGR() string { return c.sgr(40, 100) }

func (c Color) sgr(normal, bright int) string {
	switch {
	case c == ColorDefault || int(c) >= len(colorNames):
		return ""
	case c <= ColorLightGray:
		return strconv.Itoa(normal + int(c-ColorBlack))
	default:
		return strconv.Itoa(bright + int(c-ColorGray))
	}
}
