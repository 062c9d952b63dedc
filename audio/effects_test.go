package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestSynthesizeLength(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for c := CueArm; c < cueCount; c++ {
		n, peak := drain(Synthesize(c, cfg))
		if want := rate.N(c.Duration()); n < want-1 || n > want+1 {
			t.Errorf("%s: got %d samples, want %d", c, n, want)
		}
		if peak == 0 {
			t.Errorf("%s: expected audible output", c)
		}
	}
}

func TestSynthesizeZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	n, peak := drain(Synthesize(CueCommit, cfg))
	if n == 0 {
		t.Fatal("expected samples even when silent")
	}
	if peak != 0 {
		t.Errorf("expected silence, got peak %f", peak)
	}
}

func TestEnvelopeStartsAtZero(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(0, 10*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 10*time.Millisecond, 5*time.Millisecond, time.Millisecond, rate)

	buf := make([][2]float64, 4)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("expected first sample muted by attack, got %f", buf[0][0])
	}
	if buf[3][0] <= buf[1][0] {
		t.Errorf("expected rising attack, got %v", buf)
	}
}

func TestCueNames(t *testing.T) {
	names := map[Cue]string{
		CueArm: "arm", CuePlace: "place", CueCommit: "commit",
		CueMove: "move", CueRemove: "remove", CueCancel: "cancel",
	}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("got %q, want %q", c.String(), want)
		}
	}
}

func TestPlayerWithoutStartIsSilent(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	// Must not block or panic without a speaker
	p.Play(CueCommit)
	p.Stop()

	if p.Muted() {
		t.Fatal("expected unmuted by default")
	}
	if !p.ToggleMute() || !p.Muted() {
		t.Fatal("expected muted after toggle")
	}
}

func TestDisabledPlayerStartIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)
	if err := p.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Play(CueArm)
}
