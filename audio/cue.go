// Package audio synthesizes short interaction cues and plays them through the system speaker
package audio

import "time"

// Cue identifies an interaction sound
type Cue uint8

const (
	CueArm    Cue = iota // Placement mode toggled
	CuePlace             // Pending tag dropped on the canvas
	CueCommit            // Tag persisted or link saved
	CueMove              // Tag repositioned
	CueRemove            // Tag removed
	CueCancel            // Pending or session discarded
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueArm:
		return "arm"
	case CuePlace:
		return "place"
	case CueCommit:
		return "commit"
	case CueMove:
		return "move"
	case CueRemove:
		return "remove"
	case CueCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Config controls cue playback
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// DefaultConfig returns enabled cues at half volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// Cue shapes
const (
	armDuration     = 40 * time.Millisecond
	placeDuration   = 60 * time.Millisecond
	commitDuration  = 250 * time.Millisecond
	moveDuration    = 80 * time.Millisecond
	removeDuration  = 120 * time.Millisecond
	cancelDuration  = 90 * time.Millisecond
	cueAttack       = 5 * time.Millisecond
	cueShortRelease = 20 * time.Millisecond
)

// Duration returns the length of the synthesized cue
func (c Cue) Duration() time.Duration {
	switch c {
	case CueArm:
		return armDuration
	case CuePlace:
		return placeDuration
	case CueCommit:
		return commitDuration
	case CueMove:
		return moveDuration
	case CueRemove:
		return removeDuration
	case CueCancel:
		return cancelDuration
	default:
		return 0
	}
}
