package editor

import "github.com/lixenwraith/tagboard/vmath"

// State is the interaction state of the editor
type State uint8

const (
	StateIdle           State = iota // No transient state; a link session for a persisted tag may be open
	StatePlacementArmed              // Next canvas click begins tag creation
	StatePending                     // Pending tag exists, awaiting link confirmation
	StateDragging                    // Pointer held on an existing tag, click or drag not yet resolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlacementArmed:
		return "PlacementArmed"
	case StatePending:
		return "Pending"
	case StateDragging:
		return "DraggingTag"
	default:
		return "Unknown"
	}
}

// gestureKind discriminates what a held pointer is doing
type gestureKind uint8

const (
	gesturePlace gestureKind = iota + 1 // Press on canvas while armed
	gestureTag                          // Press on an existing tag's handle
)

// gesture is the per-gesture interaction session, destroyed on release or cancel
// frame is the container size at press time; releases convert against it
type gesture struct {
	kind     gestureKind
	tagID    string
	origin   vmath.Point
	last     vmath.Point
	frame    vmath.Size
	dragging bool
}
