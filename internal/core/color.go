package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color used for entities and text.
// Both the terminal and window drivers can express it directly.
type Color struct {
	R, G, B uint8
}

// Named colors used by the game.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorRed   = Color{255, 0, 0}
	ColorGray  = Color{138, 138, 138}
)

var namedColors = map[string]Color{
	"black": ColorBlack,
	"white": ColorWhite,
	"red":   ColorRed,
	"gray":  ColorGray,
	"grey":  ColorGray,
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor converts "#rrggbb", "#rgb" or a color name to a Color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil //#nosec G115 -- masked by shift width
}
