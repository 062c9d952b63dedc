// Package render draws the tag canvas, link prompt, and status bar onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tagboard/editor"
	"github.com/lixenwraith/tagboard/mode"
)

// Marker glyphs
const (
	GlyphTag       = '◆'
	GlyphTagLinked = '●'
	GlyphPending   = '+'
	GlyphDragging  = '✥'
	GlyphGrid      = '·'
)

// gridStep is the spacing of placement guide dots while armed
const gridStep = 4

// Frame is the state drawn in one pass
type Frame struct {
	State   editor.State
	Markers []editor.Marker
	Prompt  mode.Prompt
	Editing bool
	Muted   bool
	Count   int
	Path    string
}

// FrameOf captures a frame from the router
func FrameOf(r *mode.Router, path string) Frame {
	ed := r.Editor()
	prompt, editing := r.Prompt()
	return Frame{
		State:   ed.State(),
		Markers: ed.Markers(),
		Prompt:  prompt,
		Editing: editing,
		Muted:   r.Muted(),
		Count:   len(ed.Tags()),
		Path:    path,
	}
}

// Renderer draws frames to a screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer over screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen, composes the frame, and shows it
func (r *Renderer) Draw(f Frame) {
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	canvasH := h - StatusRows
	if f.State == editor.StatePlacementArmed {
		r.drawGrid(w, canvasH)
	}
	r.drawMarkers(f.Markers, w, canvasH)
	if f.Editing {
		r.drawPrompt(f.Prompt, w, canvasH)
	}
	r.drawStatus(f, w, h-1)
	r.screen.Show()
}

func (r *Renderer) drawGrid(w, h int) {
	st := tcell.StyleDefault.Foreground(RgbGrid).Background(RgbBackground)
	for y := gridStep / 2; y < h; y += gridStep {
		for x := gridStep; x < w; x += gridStep * 2 {
			r.screen.SetContent(x, y, GlyphGrid, nil, st)
		}
	}
}

func (r *Renderer) drawMarkers(markers []editor.Marker, w, h int) {
	for _, m := range markers {
		x, y := CellOf(m.Position)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}

		glyph, fg := markerGlyph(m)
		st := tcell.StyleDefault.Foreground(fg).Background(RgbBackground).Bold(true)
		if m.Editing {
			st = st.Reverse(true)
		}
		r.screen.SetContent(x, y, glyph, nil, st)

		if m.Link.Text != "" && !m.Dragging {
			tip := RgbTooltip
			if m.Link.HasURL() {
				tip = RgbTooltipLink
			}
			r.text(x+2, y, w, m.Link.Text, tcell.StyleDefault.Foreground(tip).Background(RgbBackground))
		}
	}
}

func markerGlyph(m editor.Marker) (rune, tcell.Color) {
	switch {
	case m.Kind == editor.MarkerPending:
		return GlyphPending, RgbPending
	case m.Dragging:
		return GlyphDragging, RgbDragging
	case m.Link.HasURL():
		return GlyphTagLinked, RgbTagLinked
	}
	return GlyphTag, RgbTag
}

// drawPrompt renders the link editor on the two rows above the status bar
func (r *Renderer) drawPrompt(p mode.Prompt, w, canvasH int) {
	if canvasH < 2 {
		return
	}
	bg := tcell.StyleDefault.Background(RgbPromptBg)
	for y := canvasH - 2; y < canvasH; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	r.promptField(canvasH-2, w, "url ", p.Link.URL, p.Active == mode.FieldURL)
	r.promptField(canvasH-1, w, "text", p.Link.Text, p.Active == mode.FieldText)
}

func (r *Renderer) promptField(y, w int, label, value string, active bool) {
	labelSt := tcell.StyleDefault.Foreground(RgbPromptLabel).Background(RgbPromptBg)
	if active {
		labelSt = labelSt.Foreground(RgbPromptActive).Bold(true)
	}
	x := r.text(1, y, w, label, labelSt)
	x = r.text(x+1, y, w, value, tcell.StyleDefault.Foreground(RgbPromptText).Background(RgbPromptBg))
	if active && x < w {
		r.screen.SetContent(x, y, '_', nil, tcell.StyleDefault.Foreground(RgbPromptActive).Background(RgbPromptBg).Blink(true))
	}
}

func (r *Renderer) drawStatus(f Frame, w, y int) {
	if y < 0 {
		return
	}
	modeBg := RgbStatusIdleBg
	label := " IDLE "
	switch f.State {
	case editor.StatePlacementArmed:
		modeBg, label = RgbStatusArmedBg, " PLACE "
	case editor.StatePending:
		modeBg, label = RgbStatusPendingBg, " PENDING "
	case editor.StateDragging:
		modeBg, label = RgbStatusDragBg, " DRAG "
	}
	if f.Editing && f.State == editor.StateIdle {
		modeBg, label = RgbStatusPendingBg, " LINK "
	}

	x := r.text(0, y, w, label, tcell.StyleDefault.Foreground(RgbStatusText).Background(modeBg).Bold(true))

	info := fmt.Sprintf(" %d tags | %s", f.Count, f.Path)
	if f.Muted {
		info += " | muted"
	}
	r.text(x, y, w, info, tcell.StyleDefault.Foreground(RgbStatusInfo).Background(RgbBackground))
}

// text writes s from column x, clipped at w, and returns the column after it
func (r *Renderer) text(x, y, w int, s string, st tcell.Style) int {
	for _, ch := range s {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, st)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
