package editor

import (
	"math"

	"github.com/lixenwraith/tagboard/link"
	"github.com/lixenwraith/tagboard/tag"
	"github.com/lixenwraith/tagboard/vmath"
)

// MarkerKind distinguishes persisted tags from the pending one
type MarkerKind uint8

const (
	MarkerTag MarkerKind = iota
	MarkerPending
)

// Marker is a render-ready tag position in container pixels
type Marker struct {
	ID       string // Empty for the pending marker
	Kind     MarkerKind
	Position vmath.Point
	Link     tag.Link
	Editing  bool // Link session open on this marker
	Dragging bool // Position follows the pointer, not the store
}

// Markers derives pixel positions from the current size
// Returns nil until the size is valid. Persisted tags come first in insertion
// order, followed by the pending marker
func (e *Editor) Markers() []Marker {
	if !e.Ready() {
		return nil
	}

	dragID, dragging := e.Dragging()
	target, _, editing := e.LinkSession()

	out := make([]Marker, 0, len(e.tags)+1)
	for _, t := range e.tags {
		m := Marker{ID: t.ID, Kind: MarkerTag, Link: t.Link}
		m.Position, _ = vmath.ToPixels(vmath.Point{X: t.X, Y: t.Y}, e.size)
		m.Editing = editing && target == link.ForTag(t.ID)
		if dragging && t.ID == dragID {
			m.Position = e.dragPreview()
			m.Dragging = true
		}
		out = append(out, m)
	}

	if e.hasPending {
		m := Marker{Kind: MarkerPending, Editing: true}
		m.Position, _ = vmath.ToPixels(e.pending, e.size)
		m.Link = e.session.Buffer()
		out = append(out, m)
	}
	return out
}

// dragPreview places the dragged marker under the pointer, re-projected onto the current size
func (e *Editor) dragPreview() vmath.Point {
	g := e.gesture
	frac, ok := vmath.ToFractional(g.last, g.frame)
	if !ok {
		return g.last
	}
	p, _ := vmath.ToPixels(vmath.Clamp01(frac), e.size)
	return p
}

// HitTest returns the topmost tag whose handle covers pixel p
func (e *Editor) HitTest(p vmath.Point) (string, bool) {
	if !e.Ready() {
		return "", false
	}
	r := e.opts.HandleRadius
	for i := len(e.tags) - 1; i >= 0; i-- {
		t := e.tags[i]
		pos, _ := vmath.ToPixels(vmath.Point{X: t.X, Y: t.Y}, e.size)
		if math.Abs(pos.X-p.X) <= r && math.Abs(pos.Y-p.Y) <= r {
			return t.ID, true
		}
	}
	return "", false
}
