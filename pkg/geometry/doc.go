// Package geometry provides the immutable value types used by layout:
// points, vectors, sizes, rectangles and thicknesses.
//
// All types are plain values. Methods never mutate their receiver; they
// return a new value instead.
package geometry
