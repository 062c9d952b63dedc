package vmath

// ToFractional converts a container-relative pixel point into fractions of the container extent
// Returns false without converting when the size is not valid
func ToFractional(p Point, s Size) (Point, bool) {
	if !s.Valid() {
		return Point{}, false
	}
	return Point{X: p.X / s.Width, Y: p.Y / s.Height}, true
}

// ToPixels converts a fractional point into container-relative pixels
// Returns false without converting when the size is not valid
func ToPixels(p Point, s Size) (Point, bool) {
	if !s.Valid() {
		return Point{}, false
	}
	return Point{X: p.X * s.Width, Y: p.Y * s.Height}, true
}

// Clamp01 limits both coordinates of a fractional point to [0,1]
func Clamp01(p Point) Point {
	return Point{X: clamp(p.X, 0, 1), Y: clamp(p.Y, 0, 1)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
