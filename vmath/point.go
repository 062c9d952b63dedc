package vmath

import "math"

// Point is a 2D position, in pixels or fractions depending on context
type Point struct {
	X, Y float64
}

// Size is a container extent in pixels
type Size struct {
	Width, Height float64
}

// Valid reports whether the size can be used as a conversion frame
// Zero, negative, NaN and infinite extents are not valid
func (s Size) Valid() bool {
	return finite(s.Width) && finite(s.Height) && s.Width > 0 && s.Height > 0
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between two points
func Distance(a, b Point) float64 {
	d := a.Sub(b)
	return math.Hypot(d.X, d.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
