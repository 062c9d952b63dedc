package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cues plays interaction sounds
type Cues interface {
	Play(Cue)
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}

// Player mixes cues onto the system speaker
// Speaker callbacks run on beep's goroutine, so the mixer is guarded by speaker.Lock
type Player struct {
	cfg   Config
	mixer *beep.Mixer
	muted atomic.Bool

	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates a player; call Start before Play has any effect
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker
// Fails when no audio device is available; callers continue without sound
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop clears pending cues and closes the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// ToggleMute flips muting and returns the new state
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

// Muted reports whether cues are suppressed
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Play queues the cue on the mixer
func (p *Player) Play(c Cue) {
	if p.muted.Load() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s := Synthesize(c, p.cfg)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
