// Package editor is the tag interaction engine: placement mode, the pending tag,
// click-versus-drag classification on existing tags, and the link edit session
//
// All methods run synchronously on the caller's goroutine; an Editor is not safe
// for concurrent use. The persisted collection is replaced, never mutated, and
// handed to Options.OnChange after every applied action
package editor

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/tagboard/link"
	"github.com/lixenwraith/tagboard/tag"
	"github.com/lixenwraith/tagboard/vmath"
)

// Editor owns the transient interaction state over a tag collection
type Editor struct {
	opts    Options
	log     *zap.Logger
	reducer *tag.Reducer

	tags tag.Collection
	size vmath.Size

	state      State
	pending    vmath.Point // fractional, meaningful only in StatePending
	hasPending bool
	gesture    *gesture
	session    link.Session
}

// New creates an editor over the initial collection supplied by the host
// The size is unknown until the first Resize
func New(initial tag.Collection, opts Options) *Editor {
	opts = opts.normalized()
	return &Editor{
		opts:    opts,
		log:     opts.Logger,
		reducer: tag.NewReducer(opts.IDs),
		tags:    initial.Clone(),
		state:   StateIdle,
	}
}

// State returns the current interaction state
func (e *Editor) State() State {
	return e.state
}

// Tags returns a copy of the persisted collection
func (e *Editor) Tags() tag.Collection {
	return e.tags.Clone()
}

// Size returns the last observed container size
func (e *Editor) Size() vmath.Size {
	return e.size
}

// Ready reports whether a valid container size has been observed
func (e *Editor) Ready() bool {
	return e.size.Valid()
}

// Resize records a new container size
// Rendered positions follow on the next read; an in-progress gesture keeps its own frame
func (e *Editor) Resize(s vmath.Size) {
	e.size = s
	e.log.Debug("container resized",
		zap.Float64("width", s.Width),
		zap.Float64("height", s.Height),
		zap.Bool("ready", s.Valid()))
}

// Pending returns the pending tag's fractional position
func (e *Editor) Pending() (vmath.Point, bool) {
	return e.pending, e.hasPending
}

// ArmPlacement toggles placement mode
// Arming from any other state first cancels whatever is in progress
func (e *Editor) ArmPlacement() {
	if e.state == StatePlacementArmed {
		e.gesture = nil
		e.setState(StateIdle)
		return
	}
	e.Cancel()
	e.setState(StatePlacementArmed)
}

// Cancel drops the pending tag, any unresolved gesture and the link session
// The persisted collection is never touched
func (e *Editor) Cancel() {
	if e.session.IsOpen() {
		e.log.Debug("link session discarded", zap.String("reason", "cancel"))
	}
	e.session.Discard()
	e.clearPending()
	e.gesture = nil
	e.setState(StateIdle)
}

// Remove deletes the tag with id
// A link session or gesture on that tag ends without further mutation
func (e *Editor) Remove(id string) {
	if e.session.IsOpenFor(link.ForTag(id)) {
		e.session.Discard()
	}
	if e.gesture != nil && e.gesture.kind == gestureTag && e.gesture.tagID == id {
		e.gesture = nil
		e.setState(StateIdle)
	}
	e.apply(tag.Remove{ID: id})
}

// RemoveEditing removes whatever the open link session targets
// For the pending tag this is the same as discarding it
// Returns false when no session is open
func (e *Editor) RemoveEditing() bool {
	target, ok := e.session.Target()
	if !ok {
		return false
	}
	if target.Pending {
		e.DiscardLink()
		return true
	}
	e.Remove(target.TagID)
	return true
}

func (e *Editor) apply(a tag.Action) string {
	next, id := e.reducer.Apply(e.tags, a)
	e.tags = next
	e.log.Debug("action applied",
		zap.Stringer("action", a.Kind()),
		zap.String("tag_id", id),
		zap.Int("tags", len(next)))
	if e.opts.OnChange != nil {
		e.opts.OnChange(next.Clone())
	}
	return id
}

func (e *Editor) setState(s State) {
	if s == e.state {
		return
	}
	e.log.Debug("state transition",
		zap.Stringer("from", e.state),
		zap.Stringer("to", s))
	e.state = s
}

func (e *Editor) clearPending() {
	e.pending = vmath.Point{}
	e.hasPending = false
}

// commitPending turns the pending tag into a persisted one when the link has a url
func (e *Editor) commitPending(l tag.Link) {
	pos := e.pending
	e.clearPending()
	e.setState(StateIdle)

	if strings.TrimSpace(l.URL) == "" {
		e.log.Debug("pending tag dropped", zap.String("reason", "empty url"))
		return
	}
	e.apply(tag.Add{X: pos.X, Y: pos.Y, Link: l})
}
