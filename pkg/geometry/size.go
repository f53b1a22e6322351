package geometry

import (
	"fmt"
	"math"
)

// Size represents width and height dimensions in pixels.
//
// A NaN component means "unspecified" (auto-size on that axis) and a +Inf
// component means "unbounded".
type Size struct {
	Width  float64
	Height float64
}

var (
	// SizeZero is the empty size.
	SizeZero = Size{}
	// SizeUnspecified leaves both axes to automatic sizing.
	SizeUnspecified = Size{Width: math.NaN(), Height: math.NaN()}
	// SizeInfinite is unbounded on both axes.
	SizeInfinite = Size{Width: math.Inf(1), Height: math.Inf(1)}
)

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// HasNaN reports whether either component is NaN.
func (s Size) HasNaN() bool {
	return math.IsNaN(s.Width) || math.IsNaN(s.Height)
}

// HasInf reports whether either component is infinite.
func (s Size) HasInf() bool {
	return math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0)
}

// IsValid reports whether s is non-negative and each axis is finite or
// unspecified.
func (s Size) IsValid() bool {
	return validExtent(s.Width) && validExtent(s.Height)
}

// IsFinite reports whether both components are finite, non-NaN and
// non-negative. Layout results must satisfy this.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height) && s.Width >= 0 && s.Height >= 0
}

// Equal compares sizes treating NaN components as equal to each other.
func (s Size) Equal(other Size) bool {
	return floatSame(s.Width, other.Width) && floatSame(s.Height, other.Height)
}

// WithWidth returns a copy of s with the given width.
func (s Size) WithWidth(w float64) Size {
	return Size{Width: w, Height: s.Height}
}

// WithHeight returns a copy of s with the given height.
func (s Size) WithHeight(h float64) Size {
	return Size{Width: s.Width, Height: h}
}

// Constrain returns s limited componentwise to at most limit.
func (s Size) Constrain(limit Size) Size {
	return Size{
		Width:  math.Min(s.Width, limit.Width),
		Height: math.Min(s.Height, limit.Height),
	}
}

// Deflate shrinks s by the thickness, never going below zero.
func (s Size) Deflate(t Thickness) Size {
	return Size{
		Width:  math.Max(0, s.Width-t.Horizontal()),
		Height: math.Max(0, s.Height-t.Vertical()),
	}
}

// Inflate grows s by the thickness.
func (s Size) Inflate(t Thickness) Size {
	return Size{
		Width:  s.Width + t.Horizontal(),
		Height: s.Height + t.Vertical(),
	}
}

// NonNegative floors both components at zero.
func (s Size) NonNegative() Size {
	return Size{Width: math.Max(s.Width, 0), Height: math.Max(s.Height, 0)}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func validExtent(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	return v >= 0
}

func floatSame(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
