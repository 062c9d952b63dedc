package editor

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tagboard/link"
	"github.com/lixenwraith/tagboard/tag"
	"github.com/lixenwraith/tagboard/vmath"
)

// PointerDown starts a gesture at container-relative pixel p
// Ignored until a valid container size is known. A press while another gesture
// is unresolved supersedes it; a press while a tag is pending dismisses it
func (e *Editor) PointerDown(p vmath.Point) {
	if !e.Ready() {
		return
	}

	if e.gesture != nil {
		e.log.Debug("gesture superseded", zap.String("tag_id", e.gesture.tagID))
		e.gesture = nil
		if e.state == StateDragging {
			e.setState(StateIdle)
		}
	}

	if e.state == StatePending {
		e.session.Discard()
		e.clearPending()
		e.setState(StateIdle)
		e.log.Debug("pending tag dropped", zap.String("reason", "press outside"))
	}

	switch e.state {
	case StatePlacementArmed:
		e.gesture = &gesture{kind: gesturePlace, origin: p, last: p, frame: e.size}

	case StateIdle:
		id, hit := e.HitTest(p)
		if !hit {
			// Press on bare canvas dismisses an open editor
			e.session.Discard()
			return
		}
		e.gesture = &gesture{kind: gestureTag, tagID: id, origin: p, last: p, frame: e.size}
		e.setState(StateDragging)
	}
}

// PointerMove tracks a held pointer
// The gesture becomes a drag once displacement from the origin exceeds the threshold
func (e *Editor) PointerMove(p vmath.Point) {
	g := e.gesture
	if g == nil {
		return
	}
	g.last = p
	e.classify(g)
}

// PointerUp resolves the gesture at pixel p
func (e *Editor) PointerUp(p vmath.Point) {
	g := e.gesture
	if g == nil {
		return
	}
	e.gesture = nil
	g.last = p
	e.classify(g)

	switch g.kind {
	case gesturePlace:
		e.place(g)
	case gestureTag:
		e.setState(StateIdle)
		if g.dragging {
			e.dropTag(g)
		} else {
			e.clickTag(g.tagID)
		}
	}
}

func (e *Editor) classify(g *gesture) {
	if g.dragging || g.kind != gestureTag {
		return
	}
	if vmath.Distance(g.last, g.origin) > e.opts.DragThreshold {
		g.dragging = true
		e.log.Debug("gesture classified as drag", zap.String("tag_id", g.tagID))
	}
}

// place creates the pending tag at the press origin and opens its link session
func (e *Editor) place(g *gesture) {
	frac, ok := vmath.ToFractional(g.origin, g.frame)
	if !ok {
		e.setState(StateIdle)
		return
	}
	e.pending = vmath.Clamp01(frac)
	e.hasPending = true
	e.session.Open(link.PendingTarget, tag.Link{})
	e.setState(StatePending)
}

// dropTag moves a dragged tag to the release point, converted in the gesture's frame
func (e *Editor) dropTag(g *gesture) {
	frac, ok := vmath.ToFractional(g.last, g.frame)
	if !ok {
		return
	}
	frac = vmath.Clamp01(frac)
	e.apply(tag.Move{ID: g.tagID, X: frac.X, Y: frac.Y})
}

// clickTag toggles the link session for the tag
func (e *Editor) clickTag(id string) {
	target := link.ForTag(id)
	if e.session.IsOpenFor(target) {
		e.session.Discard()
		e.log.Debug("link session closed", zap.String("tag_id", id))
		return
	}
	t, ok := e.tags.Find(id)
	if !ok {
		// Removed while the pointer was held
		return
	}
	e.session.Open(target, t.Link)
	e.log.Debug("link session opened", zap.String("tag_id", id))
}

// Dragging returns the id of the tag under an active drag
func (e *Editor) Dragging() (string, bool) {
	g := e.gesture
	if g == nil || g.kind != gestureTag || !g.dragging {
		return "", false
	}
	return g.tagID, true
}
