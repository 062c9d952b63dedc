// Package link buffers edits to a single tag's link while its editor is open
package link

import "github.com/lixenwraith/tagboard/tag"

// Target identifies what a session edits: a persisted tag or the pending one
type Target struct {
	TagID   string
	Pending bool
}

// PendingTarget is the target for the uncommitted placement tag
var PendingTarget = Target{Pending: true}

// ForTag returns the target for a persisted tag
func ForTag(id string) Target {
	return Target{TagID: id}
}

// Session holds at most one open edit buffer
// Opening a new target drops the previous buffer without committing it
type Session struct {
	open    bool
	target  Target
	initial tag.Link
	buffer  tag.Link
	patch   tag.LinkPatch
}

// Result is what a commit hands back to the caller
type Result struct {
	Target Target
	Link   tag.Link      // buffered link after all updates
	Patch  tag.LinkPatch // keys touched since open
}

// Open starts buffering edits for target from initial
// Any session already open is discarded
func (s *Session) Open(target Target, initial tag.Link) {
	*s = Session{
		open:    true,
		target:  target,
		initial: initial,
		buffer:  initial,
	}
}

// IsOpen reports whether a buffer exists
func (s *Session) IsOpen() bool {
	return s.open
}

// IsOpenFor reports whether a buffer exists for target
func (s *Session) IsOpenFor(target Target) bool {
	return s.open && s.target == target
}

// Target returns the open session's target
func (s *Session) Target() (Target, bool) {
	return s.target, s.open
}

// Buffer returns the current buffered link
func (s *Session) Buffer() tag.Link {
	return s.buffer
}

// Initial returns the link the session was opened with
func (s *Session) Initial() tag.Link {
	return s.initial
}

// Update merges p into the buffer
// Returns false when no session is open
func (s *Session) Update(p tag.LinkPatch) bool {
	if !s.open {
		return false
	}
	s.buffer = s.buffer.Merge(p)
	s.patch = s.patch.Combine(p)
	return true
}

// Commit closes the session and returns the buffered edits
func (s *Session) Commit() (Result, bool) {
	if !s.open {
		return Result{}, false
	}
	res := Result{Target: s.target, Link: s.buffer, Patch: s.patch}
	*s = Session{}
	return res, true
}

// Discard closes the session without returning anything
func (s *Session) Discard() {
	*s = Session{}
}
