package fig

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque RGB color with 8-bit components. Style options
// accept colors by TikZ name, SVG 1.1 name, or hex notation.
type Color struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// tikzNames is the TikZ/xcolor base palette. The RGB values match what
// xcolor actually mixes, so SVG output of a named color matches the
// TikZ rendering of the same figure.
var tikzNames = map[string]Color{
	"red":       {238, 0, 0},
	"green":     {0, 238, 0},
	"blue":      {0, 0, 238},
	"cyan":      {0, 238, 238},
	"magenta":   {238, 0, 238},
	"yellow":    {238, 238, 0},
	"black":     {0, 0, 0},
	"gray":      {136, 136, 136},
	"darkgray":  {68, 68, 68},
	"lightgray": {187, 187, 187},
	"brown":     {150, 75, 0},
	"lime":      {191, 255, 0},
	"olive":     {128, 128, 0},
	"orange":    {255, 165, 0},
	"pink":      {255, 105, 180},
	"purple":    {179, 0, 179},
	"teal":      {0, 154, 154},
	"violet":    {238, 130, 238},
	"white":     {238, 238, 238},
}

// tikzNameOf maps palette colors back to their TikZ names, so the TikZ
// codec can emit the bare name instead of a \definecolor preamble.
var tikzNameOf = func() map[Color]string {
	m := make(map[Color]string, len(tikzNames))
	for name, c := range tikzNames {
		m[c] = name
	}
	return m
}()

// TikZName returns the TikZ base-palette name for c, if it has one.
func TikZName(c Color) (string, bool) {
	name, ok := tikzNameOf[c]
	return name, ok
}

// ParseColor interprets a style color value. It accepts, in order of
// precedence: a TikZ base-palette name, an SVG 1.1 color name (the
// golang.org/x/image/colornames set), or "#rgb"/"#rrggbb" hex notation.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := tikzNames[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name[1:])
	}
	return Color{}, fmt.Errorf("fig: unknown color %q", s)
}

func parseHexColor(hex string) (Color, error) {
	var c Color
	switch len(hex) {
	case 3:
		_, err := fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return Color{}, fmt.Errorf("fig: bad hex color %q", "#"+hex)
		}
		c.R *= 17
		c.G *= 17
		c.B *= 17
	case 6:
		_, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil {
			return Color{}, fmt.Errorf("fig: bad hex color %q", "#"+hex)
		}
	default:
		return Color{}, fmt.Errorf("fig: bad hex color %q", "#"+hex)
	}
	return c, nil
}
