// Package engine provides the core logic for the tube color-sorting puzzle.
// This package is UI-agnostic and deterministic: every operation is a pure
// function from an input state to an output value.
package engine

import "strings"

// Color represents the color of a single unit inside a container.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorPink
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Rune returns a single character representation of the color.
// Used for ASCII rendering and as the symbol in state keys.
func (c Color) Rune() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorCyan:
		return 'C'
	case ColorPink:
		return 'K'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	case "cyan", "c":
		return ColorCyan, true
	case "pink", "k":
		return ColorPink, true
	default:
		return ColorRed, false
	}
}

// Palette returns the first n distinct colors.
// n is clamped to the number of defined colors.
func Palette(n int) []Color {
	if n > int(ColorCount) {
		n = int(ColorCount)
	}
	colors := make([]Color, 0, n)
	for c := Color(0); c < Color(n); c++ {
		colors = append(colors, c)
	}
	return colors
}
