package tag

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	ErrDuplicateID = errors.New("duplicate tag id")
	ErrMissingID   = errors.New("missing tag id")
	ErrOutOfRange  = errors.New("coordinate out of range")
)

// Validate checks id uniqueness and the fractional coordinate range
func (c Collection) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for i, t := range c {
		if t.ID == "" {
			return fmt.Errorf("tag %d: %w", i, ErrMissingID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("tag %q: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = struct{}{}
		if !inUnit(t.X) || !inUnit(t.Y) {
			return fmt.Errorf("tag %q (%g,%g): %w", t.ID, t.X, t.Y, ErrOutOfRange)
		}
	}
	return nil
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Decode parses the persisted attribute value [{x,y,id,link}] and validates it
// Empty input decodes to an empty collection
func Decode(data []byte) (Collection, error) {
	if len(data) == 0 {
		return Collection{}, nil
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if c == nil {
		c = Collection{}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return c, nil
}

// Encode writes the collection in the persisted attribute format
// A nil collection encodes as an empty array
func Encode(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return data, nil
}
