package editor

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tagboard/tag"
)

const (
	DefaultDragThreshold = 3.0 // pixels of displacement before a press becomes a drag
	DefaultHandleRadius  = 8.0 // pixels around a tag position that count as its handle
)

// Options configures an Editor
type Options struct {
	// DragThreshold is the displacement from the press origin a gesture must exceed to count as a drag
	// Zero classifies any movement as a drag; negative selects the default
	DragThreshold float64

	// HandleRadius is the per-axis pixel distance within which a press hits a tag; <= 0 selects the default
	HandleRadius float64

	// IDs issues new tag ids; nil selects UUID v4
	IDs tag.IDGenerator

	// OnChange receives the new collection after every applied action
	OnChange func(tag.Collection)

	// Logger receives debug transitions; nil disables logging
	Logger *zap.Logger
}

// DefaultOptions returns options with default thresholds
func DefaultOptions() Options {
	return Options{
		DragThreshold: DefaultDragThreshold,
		HandleRadius:  DefaultHandleRadius,
	}
}

func (o Options) normalized() Options {
	if o.DragThreshold < 0 {
		o.DragThreshold = DefaultDragThreshold
	}
	if o.HandleRadius <= 0 {
		o.HandleRadius = DefaultHandleRadius
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
