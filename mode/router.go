// Package mode executes input intents against the tag editor and drives the link prompt
package mode

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tagboard/audio"
	"github.com/lixenwraith/tagboard/editor"
	"github.com/lixenwraith/tagboard/input"
	"github.com/lixenwraith/tagboard/link"
	"github.com/lixenwraith/tagboard/tag"
	"github.com/lixenwraith/tagboard/vmath"
)

// Field selects which link key the prompt edits
type Field uint8

const (
	FieldURL Field = iota
	FieldText
)

// Prompt is the render-ready link prompt
type Prompt struct {
	Target link.Target
	Link   tag.Link
	Active Field
}

// Muter is implemented by cue players that can be silenced
type Muter interface {
	ToggleMute() bool
}

// LayoutFunc maps a terminal size to the container size
type LayoutFunc func(width, height int) vmath.Size

// Router interprets Intents and executes editor operations
// Authoritative owner of the prompt field and input mode
type Router struct {
	editor  *editor.Editor
	machine *input.Machine
	cues    audio.Cues
	layout  LayoutFunc
	log     *zap.Logger

	field Field
	muted bool
}

// NewRouter creates a router; nil cues or logger disable them
func NewRouter(ed *editor.Editor, machine *input.Machine, cues audio.Cues, layout LayoutFunc, log *zap.Logger) *Router {
	if cues == nil {
		cues = audio.Silent{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if layout == nil {
		layout = func(w, h int) vmath.Size { return vmath.Size{Width: float64(w), Height: float64(h)} }
	}
	return &Router{
		editor:  ed,
		machine: machine,
		cues:    cues,
		layout:  layout,
		log:     log,
	}
}

// Editor returns the routed editor
func (r *Router) Editor() *editor.Editor {
	return r.editor
}

// Muted reports whether cues were muted through the router
func (r *Router) Muted() bool {
	return r.muted
}

// Prompt returns the link prompt while a session is open
func (r *Router) Prompt() (Prompt, bool) {
	target, l, ok := r.editor.LinkSession()
	if !ok {
		return Prompt{}, false
	}
	return Prompt{Target: target, Link: l, Active: r.field}, true
}

// Handle processes an Intent and returns false if the host should exit
func (r *Router) Handle(intent *input.Intent) bool {
	if intent == nil {
		return true
	}

	before := r.snapshot()

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		r.editor.Resize(r.layout(intent.Width, intent.Height))

	case input.IntentToggleMute:
		if m, ok := r.cues.(Muter); ok {
			r.muted = m.ToggleMute()
			r.log.Debug("cues muted", zap.Bool("muted", r.muted))
		}

	case input.IntentPointerDown:
		r.editor.PointerDown(cell(intent))
	case input.IntentPointerMove:
		r.editor.PointerMove(cell(intent))
	case input.IntentPointerUp:
		r.editor.PointerUp(cell(intent))

	case input.IntentArmPlacement:
		r.editor.ArmPlacement()
		r.cues.Play(audio.CueArm)

	case input.IntentCancel:
		r.editor.Cancel()

	case input.IntentRemove:
		r.editor.RemoveEditing()

	case input.IntentTextChar:
		r.editField(func(s string) string { return s + string(intent.Char) })
	case input.IntentTextBackspace:
		r.editField(dropLastRune)
	case input.IntentTextSwitchField:
		if r.field == FieldURL {
			r.field = FieldText
		} else {
			r.field = FieldURL
		}
	case input.IntentTextConfirm:
		r.editor.CommitLink()
	}

	r.signal(before)
	r.syncMode()
	return true
}

func cell(intent *input.Intent) vmath.Point {
	return vmath.Point{X: float64(intent.X), Y: float64(intent.Y)}
}

func (r *Router) editField(edit func(string) string) {
	_, l, ok := r.editor.LinkSession()
	if !ok {
		return
	}
	switch r.field {
	case FieldURL:
		r.editor.UpdateLink(tag.PatchURL(edit(l.URL)))
	case FieldText:
		r.editor.UpdateLink(tag.PatchText(edit(l.Text)))
	}
}

func dropLastRune(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	return string(rs[:len(rs)-1])
}

// syncMode keeps the input machine's key table in step with the prompt
func (r *Router) syncMode() {
	if _, _, open := r.editor.LinkSession(); open {
		if r.machine.Mode() != input.ModeLinkPrompt {
			r.field = FieldURL
			r.machine.SetMode(input.ModeLinkPrompt)
		}
		return
	}
	r.machine.SetMode(input.ModeCanvas)
}

type snapshot struct {
	state   editor.State
	tags    tag.Collection
	editing bool
}

func (r *Router) snapshot() snapshot {
	_, _, editing := r.editor.LinkSession()
	return snapshot{state: r.editor.State(), tags: r.editor.Tags(), editing: editing}
}

// signal plays the cue matching what the intent changed
func (r *Router) signal(before snapshot) {
	after := r.snapshot()

	switch {
	case len(after.tags) > len(before.tags):
		r.cues.Play(audio.CueCommit)
	case len(after.tags) < len(before.tags):
		r.cues.Play(audio.CueRemove)
	case !tag.Equal(before.tags, after.tags):
		if linksChanged(before.tags, after.tags) {
			r.cues.Play(audio.CueCommit)
		} else {
			r.cues.Play(audio.CueMove)
		}
	case before.state == editor.StatePlacementArmed && after.state == editor.StatePending:
		r.cues.Play(audio.CuePlace)
	case before.state == editor.StatePending && after.state != editor.StatePending:
		r.cues.Play(audio.CueCancel)
	}
}

func linksChanged(a, b tag.Collection) bool {
	for i := range a {
		if a[i].Link != b[i].Link {
			return true
		}
	}
	return false
}
