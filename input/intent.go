package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C, q on canvas
	IntentResize     // Terminal resize event
	IntentToggleMute // m on canvas

	// Pointer, synthesized from left button transitions
	IntentPointerDown
	IntentPointerMove
	IntentPointerUp

	// Canvas commands
	IntentArmPlacement // a
	IntentCancel       // ESC in any mode
	IntentRemove       // x, Delete

	// Link prompt text entry
	IntentTextChar        // Printable character
	IntentTextBackspace   // Backspace
	IntentTextSwitchField // Tab toggles url/text
	IntentTextConfirm     // Enter commits the link
)

// Intent represents a parsed semantic action
// Pure data; pointer coordinates are terminal cells relative to the screen origin
type Intent struct {
	Type   IntentType
	X, Y   int
	Width  int // Resize only
	Height int // Resize only
	Char   rune
}
