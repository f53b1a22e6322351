package graphics

import (
	"image/color"
	"math"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return RGBA8(r, g, b, uint8(math.Round(clamp01(a)*255)))
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / 255
}

// IsTransparent reports whether the alpha byte is zero.
func (c Color) IsTransparent() bool {
	return uint8(c>>24) == 0
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(math.Round(clamp01(a)*255))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts to the non-premultiplied image/color representation used
// by raster backends.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts any image/color value.
func FromColor(col color.Color) Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorGray        = Color(0xFF808080)
	ColorYellow      = Color(0xFFFFFF00)
)
