package tag

import "fmt"

// Kind names an action variant
type Kind uint8

const (
	KindAdd Kind = iota + 1
	KindRemove
	KindMove
	KindEditLink
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "ADD"
	case KindRemove:
		return "REMOVE"
	case KindMove:
		return "MOVE"
	case KindEditLink:
		return "EDIT_LINK"
	default:
		return "UNKNOWN"
	}
}

// Action is a closed set of collection mutations
// Only Add, Remove, Move and EditLink satisfy it
type Action interface {
	Kind() Kind
	action()
}

// Add appends a new tag at fractional (X, Y) with an optional link
type Add struct {
	X, Y float64
	Link Link
}

// Remove deletes the tag with ID; unknown ids are ignored
type Remove struct {
	ID string
}

// Move repositions the tag with ID, keeping its link; unknown ids are ignored
type Move struct {
	ID   string
	X, Y float64
}

// EditLink shallow-merges Patch into the tag's link; unknown ids are ignored
type EditLink struct {
	ID    string
	Patch LinkPatch
}

func (Add) Kind() Kind      { return KindAdd }
func (Remove) Kind() Kind   { return KindRemove }
func (Move) Kind() Kind     { return KindMove }
func (EditLink) Kind() Kind { return KindEditLink }

func (Add) action()      {}
func (Remove) action()   {}
func (Move) action()     {}
func (EditLink) action() {}

// Reducer applies actions to collections
// It is the single writer path for tag collections
type Reducer struct {
	ids IDGenerator
}

// NewReducer creates a reducer drawing ids from gen
// A nil generator selects UUID v4 ids
func NewReducer(gen IDGenerator) *Reducer {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	return &Reducer{ids: gen}
}

// Apply returns the collection that results from a
// The input collection is left untouched. The returned id is the new tag's id
// for Add and the targeted id otherwise
// Panics on a nil action, which is a caller bug
func (r *Reducer) Apply(c Collection, a Action) (Collection, string) {
	switch a := a.(type) {
	case Add:
		id := r.nextID(c)
		out := make(Collection, len(c), len(c)+1)
		copy(out, c)
		return append(out, Tag{ID: id, X: a.X, Y: a.Y, Link: a.Link}), id

	case Remove:
		out := make(Collection, 0, len(c))
		for _, t := range c {
			if t.ID != a.ID {
				out = append(out, t)
			}
		}
		return out, a.ID

	case Move:
		out := c.Clone()
		if i := out.Index(a.ID); i >= 0 {
			out[i].X = a.X
			out[i].Y = a.Y
		}
		return out, a.ID

	case EditLink:
		out := c.Clone()
		if i := out.Index(a.ID); i >= 0 {
			out[i].Link = out[i].Link.Merge(a.Patch)
		}
		return out, a.ID

	default:
		panic(fmt.Sprintf("tag: unrecognized action %T", a))
	}
}

// nextID draws ids until one is unused in c
func (r *Reducer) nextID(c Collection) string {
	for {
		id := r.ids.NewID()
		if id != "" && !c.Contains(id) {
			return id
		}
	}
}
