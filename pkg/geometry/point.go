package geometry

import "math"

// Point represents a position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Vector represents a displacement in pixel coordinates.
type Vector struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Offset returns p translated by the coordinates of other.
// It is used to accumulate parent-relative origins into absolute ones.
func (p Point) Offset(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// IsFinite reports whether both coordinates are finite and not NaN.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Scale returns v multiplied by factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
