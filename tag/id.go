package tag

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces opaque tag identifiers
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUID v4 strings
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues prefix-1, prefix-2, ... for deterministic ids
// Not safe for concurrent use
type SequenceGenerator struct {
	Prefix string
	n      int
}

func (g *SequenceGenerator) NewID() string {
	g.n++
	return g.Prefix + strconv.Itoa(g.n)
}
