package input

// InputMode selects which key table applies
// Kept in sync by mode.Router when the link prompt opens or closes
type InputMode uint8

const (
	ModeCanvas InputMode = iota
	ModeLinkPrompt
)
