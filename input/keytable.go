package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents per mode
type KeyTable struct {
	// Keys honored in every mode
	GlobalKeys map[tcell.Key]IntentType

	// Canvas mode bindings
	CanvasKeys  map[tcell.Key]IntentType
	CanvasRunes map[rune]IntentType

	// Link prompt bindings; unbound runes become IntentTextChar
	PromptKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		GlobalKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentCancel,
		},
		CanvasKeys: map[tcell.Key]IntentType{
			tcell.KeyDelete: IntentRemove,
		},
		CanvasRunes: map[rune]IntentType{
			'a': IntentArmPlacement,
			'x': IntentRemove,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
		PromptKeys: map[tcell.Key]IntentType{
			tcell.KeyEnter:      IntentTextConfirm,
			tcell.KeyTab:        IntentTextSwitchField,
			tcell.KeyBacktab:    IntentTextSwitchField,
			tcell.KeyBackspace:  IntentTextBackspace,
			tcell.KeyBackspace2: IntentTextBackspace,
			tcell.KeyDelete:     IntentRemove,
		},
	}
}
