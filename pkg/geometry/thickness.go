package geometry

import "fmt"

// Thickness describes the four edges of a frame around a rectangle, used
// for margins and border widths.
type Thickness struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Uniform returns a thickness with the same value on every side.
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Symmetric returns a thickness with horizontal values on left/right and
// vertical values on top/bottom.
func Symmetric(horizontal, vertical float64) Thickness {
	return Thickness{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// IsZero reports whether all sides are zero.
func (t Thickness) IsZero() bool {
	return t == Thickness{}
}

func (t Thickness) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", t.Left, t.Top, t.Right, t.Bottom)
}
