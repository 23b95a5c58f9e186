package core

import (
	"image/color"
	"strings"
)

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
	ColorBrown
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"brown":          ColorBrown,
}

// palette holds the approximate RGB value of each terminal color.
// Index order matches the Color constants.
var palette = [...]color.RGBA{
	ColorDefault:       {192, 192, 192, 255},
	ColorRed:           {205, 0, 0, 255},
	ColorGreen:         {0, 205, 0, 255},
	ColorYellow:        {205, 205, 0, 255},
	ColorBlue:          {0, 0, 238, 255},
	ColorMagenta:       {205, 0, 205, 255},
	ColorCyan:          {0, 205, 205, 255},
	ColorWhite:         {229, 229, 229, 255},
	ColorBrightRed:     {255, 0, 0, 255},
	ColorBrightGreen:   {0, 255, 0, 255},
	ColorBrightYellow:  {255, 255, 0, 255},
	ColorBrightBlue:    {92, 92, 255, 255},
	ColorBrightMagenta: {255, 0, 255, 255},
	ColorBrightCyan:    {0, 255, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {138, 138, 138, 255},
	ColorBrown:         {135, 95, 0, 255},
}

// ParseColor converts a color name (e.g. "bright_red") to a Color.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ToRGBA returns the opaque RGB approximation of the color.
func (c Color) ToRGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}

// NearestColor maps an arbitrary RGB value to the closest terminal color.
func NearestColor(r, g, b uint8) Color {
	best := ColorDefault
	bestDist := -1
	for i, p := range palette {
		if Color(i) == ColorDefault {
			continue
		}
		dr := int(r) - int(p.R)
		dg := int(g) - int(p.G)
		db := int(b) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = Color(i)
			bestDist = d
		}
	}
	return best
}
