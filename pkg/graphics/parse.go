package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]Color{
	"transparent": ColorTransparent,
	"black":       ColorBlack,
	"white":       ColorWhite,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"gray":        ColorGray,
	"grey":        ColorGray,
	"yellow":      ColorYellow,
}

// ParseColor parses a color name or hex literal. Accepted forms are the
// names in the built-in table, "#rgb", "#rrggbb" and "#aarrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("graphics: unknown color %q", s)
	}
	alpha := uint8(0xFF)
	hex := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("graphics: bad alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = "#" + s[3:]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("graphics: parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA8(r, g, b, alpha), nil
}

// String formats the color as "#aarrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}
