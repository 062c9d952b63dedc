package editor

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tagboard/link"
	"github.com/lixenwraith/tagboard/tag"
)

// LinkSession returns the open session's target and buffered link
func (e *Editor) LinkSession() (link.Target, tag.Link, bool) {
	target, ok := e.session.Target()
	if !ok {
		return link.Target{}, tag.Link{}, false
	}
	return target, e.session.Buffer(), true
}

// OpenLink opens the link session for an existing tag
// Any other session is discarded; a pending tag is dropped
// Returns false when the tag does not exist
func (e *Editor) OpenLink(id string) bool {
	t, ok := e.tags.Find(id)
	if !ok {
		return false
	}
	if e.state == StatePending {
		e.clearPending()
	}
	e.gesture = nil
	e.setState(StateIdle)
	e.session.Open(link.ForTag(id), t.Link)
	return true
}

// UpdateLink merges p into the open session's buffer
func (e *Editor) UpdateLink(p tag.LinkPatch) bool {
	return e.session.Update(p)
}

// CommitLink closes the session and applies its edits
// A pending tag is added only when the confirmed url is non-empty; an existing
// tag receives the touched keys through EDIT_LINK
func (e *Editor) CommitLink() {
	res, ok := e.session.Commit()
	if !ok {
		return
	}
	if res.Target.Pending {
		e.commitPending(res.Link)
		return
	}
	if res.Patch.IsEmpty() {
		return
	}
	e.apply(tag.EditLink{ID: res.Target.TagID, Patch: res.Patch})
}

// DiscardLink closes the session without mutation
// Discarding the pending tag's session drops the pending tag
func (e *Editor) DiscardLink() {
	target, ok := e.session.Target()
	if !ok {
		return
	}
	e.session.Discard()
	if target.Pending {
		e.clearPending()
		e.setState(StateIdle)
	}
	e.log.Debug("link session discarded",
		zap.String("tag_id", target.TagID),
		zap.Bool("pending", target.Pending))
}
