package render

import "github.com/lixenwraith/tagboard/vmath"

// StatusRows is the number of rows reserved below the canvas
const StatusRows = 1

// CanvasSize returns the tag container size for a terminal of w x h cells
// Zero when the terminal has no room for the canvas
func CanvasSize(w, h int) vmath.Size {
	ch := h - StatusRows
	if w <= 0 || ch <= 0 {
		return vmath.Size{}
	}
	return vmath.Size{Width: float64(w), Height: float64(ch)}
}

// CellOf maps a container pixel position to the nearest cell
func CellOf(p vmath.Point) (int, int) {
	return round(p.X), round(p.Y)
}

func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
