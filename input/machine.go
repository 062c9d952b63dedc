// Package input translates tcell events into semantic intents
package input

import "github.com/gdamore/tcell/v2"

// Machine is the input state machine
// Parses tcell events into Intents and synthesizes pointer down/move/up
// from the left button mask, which tcell only reports as a level
type Machine struct {
	mode     InputMode
	keyTable *KeyTable

	held         bool
	lastX, lastY int
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeCanvas,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the current mode context
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Reset forgets a held button, e.g. after focus loss
func (m *Machine) Reset() {
	m.held = false
}

// Process parses a tcell event and returns an Intent
// Returns nil for events with no meaning in the current mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if it, ok := m.keyTable.GlobalKeys[ev.Key()]; ok {
		return &Intent{Type: it}
	}

	switch m.mode {
	case ModeLinkPrompt:
		if it, ok := m.keyTable.PromptKeys[ev.Key()]; ok {
			return &Intent{Type: it}
		}
		if ev.Key() == tcell.KeyRune {
			return &Intent{Type: IntentTextChar, Char: ev.Rune()}
		}

	case ModeCanvas:
		if it, ok := m.keyTable.CanvasKeys[ev.Key()]; ok {
			return &Intent{Type: it}
		}
		if ev.Key() == tcell.KeyRune {
			if it, ok := m.keyTable.CanvasRunes[ev.Rune()]; ok {
				return &Intent{Type: it}
			}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	left := ev.Buttons()&tcell.Button1 != 0

	switch {
	case left && !m.held:
		m.held = true
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentPointerDown, X: x, Y: y}

	case left && m.held:
		if x == m.lastX && y == m.lastY {
			return nil
		}
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentPointerMove, X: x, Y: y}

	case !left && m.held:
		m.held = false
		return &Intent{Type: IntentPointerUp, X: x, Y: y}
	}

	// Hover, wheel, and other buttons are ignored
	return nil
}
