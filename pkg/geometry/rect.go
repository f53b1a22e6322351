package geometry

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromXYWH constructs a Rect from origin and dimensions.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromPointSize constructs a Rect at p with size s.
func RectFromPointSize(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// RectFromSize constructs a Rect at the origin with size s.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Point returns the top-left corner.
func (r Rect) Point() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Offset returns r translated by v.
func (r Rect) Offset(v Vector) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// WithPoint returns r moved so its corner is at p.
func (r Rect) WithPoint(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, Width: r.Width, Height: r.Height}
}

// Deflate shrinks r by t on every side. Width and height never go below zero.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  math.Max(0, r.Width-t.Horizontal()),
		Height: math.Max(0, r.Height-t.Vertical()),
	}
}

// Inflate grows r by t on every side.
func (r Rect) Inflate(t Thickness) Rect {
	return Rect{
		X:      r.X - t.Left,
		Y:      r.Y - t.Top,
		Width:  r.Width + t.Horizontal(),
		Height: r.Height + t.Vertical(),
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsValid reports whether r has finite coordinates and finite,
// non-negative dimensions.
func (r Rect) IsValid() bool {
	return isFinite(r.X) && isFinite(r.Y) &&
		isFinite(r.Width) && isFinite(r.Height) &&
		r.Width >= 0 && r.Height >= 0
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	left := math.Min(r.X, other.X)
	top := math.Min(r.Y, other.Y)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
